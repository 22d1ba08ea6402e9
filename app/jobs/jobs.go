// Package jobs wires background work: queued jobs, event listeners, and
// scheduled tasks.
package jobs

import (
	"encoding/json"
	"time"

	"github.com/shashiranjanraj/kashvi-store/app/controllers"
	"github.com/shashiranjanraj/kashvi-store/app/services"
	"github.com/shashiranjanraj/kashvi-store/pkg/event"
	"github.com/shashiranjanraj/kashvi-store/pkg/logger"
	"github.com/shashiranjanraj/kashvi-store/pkg/queue"
	"github.com/shashiranjanraj/kashvi-store/pkg/schedule"
)

// Register hooks up job factories, order event listeners, and the schedule.
// Call once at boot, before queue.StartWorkers.
func Register() {
	queue.Register("jobs.OrderStatusEmailJob", func() queue.Job { return &OrderStatusEmailJob{} })
	queue.Register("jobs.LowStockDigestJob", func() queue.Job { return &LowStockDigestJob{} })

	event.Listen(services.EventOrderCreated, func(payload interface{}) {
		handleOrderEvent("order.created", payload)
	})
	event.Listen(services.EventOrderStatusChanged, func(payload interface{}) {
		handleOrderEvent("order.status_changed", payload)
	})

	schedule.Daily().Name("low-stock-digest").WithoutOverlapping().Run(func() {
		if err := queue.Dispatch(LowStockDigestJob{}); err != nil {
			logger.Error("schedule: dispatch low stock digest", "error", err)
		}
	})
}

// handleOrderEvent fans one order event out to the customer email queue and
// the admin websocket feed. Both paths are best effort.
func handleOrderEvent(kind string, payload interface{}) {
	ev, ok := payload.(services.OrderEvent)
	if !ok {
		logger.Warn("jobs: unexpected order event payload", "event", kind)
		return
	}

	if err := queue.Dispatch(OrderStatusEmailJob{OrderID: ev.Order.ID, Status: ev.Status}); err != nil {
		logger.Error("jobs: dispatch status email", "order_id", ev.Order.ID, "error", err)
	}

	msg, err := json.Marshal(map[string]interface{}{
		"event":        kind,
		"order_id":     ev.Order.ID,
		"order_number": ev.Order.OrderNumber,
		"status":       ev.Status,
		"total":        ev.Order.Total,
		"at":           time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	select {
	case controllers.OrderFeed.Broadcast <- msg:
	default:
		// Feed buffer full; drop rather than block the event loop.
	}
}
