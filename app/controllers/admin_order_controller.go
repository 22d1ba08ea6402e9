package controllers

import (
	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/ctx"
	"github.com/shashiranjanraj/kashvi-store/pkg/response"
)

// AdminOrderController handles the admin order views and status transitions.
type AdminOrderController struct {
	orders   *services.OrderService
	activity *services.ActivityService
}

func NewAdminOrderController() *AdminOrderController {
	return &AdminOrderController{
		orders:   services.NewOrderService(),
		activity: services.NewActivityService(),
	}
}

// Index lists all orders, optionally filtered by ?status=.
func (a *AdminOrderController) Index(c *ctx.Context) {
	orders, pagination, err := a.orders.All(
		c.Query("status"),
		queryInt(c, "page", 1),
		queryInt(c, "limit", 20),
	)
	if err != nil {
		fail(c, err)
		return
	}
	response.Paginated(c.W, orders, pagination)
}

type transitionInput struct {
	Status string `json:"status" validate:"required"`
}

// Update transitions an order's status. The enum is validated (400), the
// order must exist (404), and re-applying the current status is a silent
// no-op. Any admin may update any order.
func (a *AdminOrderController) Update(c *ctx.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	var in transitionInput
	if !c.BindJSON(&in) {
		return
	}

	order, err := a.orders.Transition(id, in.Status)
	if err != nil {
		fail(c, err)
		return
	}

	a.activity.Record(adminID(c), "updated_order_status", "order", order.ID,
		map[string]interface{}{"status": in.Status}, c.ClientIP())
	c.Success(order)
}
