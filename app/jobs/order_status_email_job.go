package jobs

import (
	"fmt"

	"github.com/shashiranjanraj/kashvi-store/app/repositories"
	"github.com/shashiranjanraj/kashvi-store/config"
	"github.com/shashiranjanraj/kashvi-store/pkg/mail"
)

// OrderStatusEmailJob notifies the customer when their order changes state.
// Queued so a slow SMTP server never blocks a checkout or an admin update.
type OrderStatusEmailJob struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

var statusSubjects = map[string]string{
	"pending":   "We received your order",
	"paid":      "Payment confirmed",
	"processing": "Your order is being prepared",
	"shipped":   "Your order is on its way",
	"delivered": "Your order has been delivered",
	"cancelled": "Your order was cancelled",
}

func (j OrderStatusEmailJob) Handle() error {
	order, err := repositories.NewOrderRepository().FindByID(j.OrderID)
	if err != nil {
		return fmt.Errorf("order email: load order %d: %w", j.OrderID, err)
	}
	if order.User == nil || order.User.Email == "" {
		return nil
	}

	subject, ok := statusSubjects[j.Status]
	if !ok {
		subject = "Order update"
	}

	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your order <strong>%s</strong> is now <strong>%s</strong>.</p><p>Total: $%.2f</p><p>— %s</p>",
		order.User.Name, order.OrderNumber, j.Status, order.Total, config.StoreName(),
	)

	return mail.To(order.User.Email).
		Subject(fmt.Sprintf("%s — %s", subject, order.OrderNumber)).
		Body(body).
		Send()
}
