package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/stripe/stripe-go/v81"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
	"github.com/shashiranjanraj/kashvi-store/pkg/logger"
	"github.com/shashiranjanraj/kashvi-store/pkg/middleware"
)

// OrderController handles customer checkout, order history, invoices, and
// the Stripe webhook.
type OrderController struct {
	orders   *services.OrderService
	payments *services.PaymentService
	invoices *services.InvoiceService
}

func NewOrderController() *OrderController {
	return &OrderController{
		orders:   services.NewOrderService(),
		payments: services.NewPaymentService(),
		invoices: services.NewInvoiceService(),
	}
}

type checkoutInput struct {
	Items         []services.CheckoutItem `json:"items" validate:"required"`
	PaymentMethod string                  `json:"payment_method" validate:"nullable,in=cod|card"`
}

// Create runs checkout. With payment_method=card and Stripe configured, the
// response carries a hosted checkout URL; otherwise the order starts as a
// pending cash-on-delivery order.
func (o *OrderController) Create(c *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(c.Context())
	if !ok {
		c.Unauthorized()
		return
	}

	var in checkoutInput
	if !c.BindJSON(&in) {
		return
	}

	order, err := o.orders.Checkout(userID, in.Items, in.PaymentMethod)
	if err != nil {
		fail(c, err)
		return
	}

	payload := map[string]interface{}{"order": order}
	if in.PaymentMethod == "card" && o.payments.Enabled() {
		// Reload with gemstones for the Stripe line items.
		full, err := o.orders.Find(order.ID, userID, false)
		if err == nil {
			if url, perr := o.payments.CreateCheckoutSession(full); perr == nil {
				payload["checkout_url"] = url
			} else {
				logger.WithCtx(c.Context()).Error("checkout: stripe session failed", "order_id", order.ID, "error", perr)
			}
		}
	}

	c.Created(payload)
}

// Index lists the requester's orders, newest first.
func (o *OrderController) Index(c *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(c.Context())
	if !ok {
		c.Unauthorized()
		return
	}

	orders, err := o.orders.ForUser(userID)
	if err != nil {
		fail(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.Success(orders)
}

// Show returns one order for its owner or an admin.
func (o *OrderController) Show(c *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(c.Context())
	if !ok {
		c.Unauthorized()
		return
	}
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	role, _ := middleware.RoleFromCtx(c.Context())
	order, err := o.orders.Find(id, userID, role == models.RoleAdmin)
	if err != nil {
		fail(c, err)
		return
	}

	history, err := o.orders.History(order.ID)
	if err != nil {
		fail(c, err)
		return
	}
	c.Success(map[string]interface{}{"order": order, "history": history})
}

// Invoice streams the order's PDF invoice.
func (o *OrderController) Invoice(c *ctx.Context) {
	userID, ok := middleware.UserIDFromCtx(c.Context())
	if !ok {
		c.Unauthorized()
		return
	}
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	role, _ := middleware.RoleFromCtx(c.Context())
	order, err := o.orders.Find(id, userID, role == models.RoleAdmin)
	if err != nil {
		fail(c, err)
		return
	}

	pdf, err := o.invoices.Render(order)
	if err != nil {
		fail(c, err)
		return
	}

	c.SetHeader("Content-Type", "application/pdf")
	c.SetHeader("Content-Disposition", `attachment; filename="invoice-`+order.OrderNumber+`.pdf"`)
	c.W.WriteHeader(http.StatusOK)
	c.W.Write(pdf) //nolint:errcheck
}

// StripeWebhook marks orders paid when their checkout session completes.
// Stripe expects a 2xx for handled events; signature failures are 400.
func (o *OrderController) StripeWebhook(c *ctx.Context) {
	payload, err := c.Body()
	if err != nil {
		c.Error(http.StatusBadRequest, "unreadable payload")
		return
	}

	event, err := o.payments.VerifyWebhook(payload, c.Header("Stripe-Signature"))
	if err != nil {
		c.Error(http.StatusBadRequest, "invalid webhook")
		return
	}

	if event.Type != "checkout.session.completed" {
		c.Success(map[string]string{"message": "event ignored"})
		return
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		c.Error(http.StatusBadRequest, "malformed session payload")
		return
	}

	if _, err := o.orders.MarkPaidByStripeSession(sess.ID); err != nil {
		// Unknown session: acknowledge so Stripe stops retrying.
		logger.WithCtx(c.Context()).Warn("webhook: mark paid failed", "session", sess.ID, "error", err)
	}
	c.Success(map[string]string{"message": "ok"})
}
