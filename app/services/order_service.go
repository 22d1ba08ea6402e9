package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/app/repositories"
	"github.com/shashiranjanraj/kashvi-store/pkg/event"
	"github.com/shashiranjanraj/kashvi-store/pkg/logger"
	"github.com/shashiranjanraj/kashvi-store/pkg/metrics"
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
)

// Events fired by the order lifecycle. Listeners (mail jobs, the admin
// websocket feed) are attached in app/jobs.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the payload fired on both order events.
type OrderEvent struct {
	Order  models.Order
	Status string
}

// CheckoutItem is one requested line at checkout.
type CheckoutItem struct {
	GemstoneID uint `json:"gemstone_id" validate:"required"`
	Quantity   int  `json:"quantity" validate:"required,gte=1"`
}

// OrderService implements checkout and the status lifecycle.
type OrderService struct {
	orders *repositories.OrderRepository
	gems   *repositories.GemstoneRepository
}

func NewOrderService() *OrderService {
	return &OrderService{
		orders: repositories.NewOrderRepository(),
		gems:   repositories.NewGemstoneRepository(),
	}
}

// newOrderNumber derives a short human-pasteable order number.
func newOrderNumber() string {
	return "KS-" + strings.ToUpper(uuid.NewString()[:8])
}

// Checkout validates the requested items, snapshots prices, decrements
// stock, and creates the order, its items, and the initial pending history
// row — all inside one transaction. The total is always computed
// server-side from stored prices.
func (s *OrderService) Checkout(userID uint, items []CheckoutItem, paymentMethod string) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, fmt.Errorf("order: checkout: %w", ErrNotFound)
	}
	if paymentMethod == "" {
		paymentMethod = "cod"
	}

	var order models.Order
	err := orm.DB().Transaction(func(tx *orm.Query) error {
		order = models.Order{
			OrderNumber:   newOrderNumber(),
			UserID:        userID,
			Status:        models.StatusPending,
			PaymentMethod: paymentMethod,
		}

		var total float64
		var lines []models.OrderItem
		for _, item := range items {
			// Quantity can arrive negative from a raw JSON body; a negative
			// line would inflate stock and produce a negative total.
			if item.Quantity < 1 {
				return ErrInvalidQuantity
			}

			var g models.Gemstone
			if err := tx.Model(&models.Gemstone{}).Where("id = ?", item.GemstoneID).First(&g); err != nil {
				if orm.IsNotFound(err) {
					return ErrNotFound
				}
				return err
			}
			if !g.Active {
				return ErrInactiveGemstone
			}
			if g.Stock < item.Quantity {
				return ErrInsufficientStock
			}

			if err := tx.Model(&models.Gemstone{}).
				Where("id = ?", g.ID).
				Update("stock", g.Stock-item.Quantity); err != nil {
				return err
			}

			total += g.Price * float64(item.Quantity)
			lines = append(lines, models.OrderItem{
				GemstoneID: g.ID,
				Quantity:   item.Quantity,
				Price:      g.Price,
			})
		}

		order.Total = total
		order.Items = lines
		if err := tx.Create(&order); err != nil {
			return err
		}

		return tx.Create(&models.OrderStatusHistory{
			OrderID: order.ID,
			Status:  models.StatusPending,
		})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInactiveGemstone) ||
			errors.Is(err, ErrInsufficientStock) || errors.Is(err, ErrInvalidQuantity) {
			return models.Order{}, err
		}
		return models.Order{}, fmt.Errorf("order: checkout: %w", err)
	}

	s.gems.InvalidateCache()
	metrics.OrdersPlaced.WithLabelValues(paymentMethod).Inc()
	event.FireAsync(EventOrderCreated, OrderEvent{Order: order, Status: models.StatusPending})

	return order, nil
}

// Find returns an order when the requester owns it or is an admin.
func (s *OrderService) Find(orderID, requesterID uint, isAdmin bool) (models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if orm.IsNotFound(err) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, fmt.Errorf("order: find: %w", err)
	}
	if !isAdmin && order.UserID != requesterID {
		return models.Order{}, ErrForbidden
	}
	return order, nil
}

// ForUser returns the requester's orders, newest first.
func (s *OrderService) ForUser(userID uint) ([]models.Order, error) {
	orders, err := s.orders.ForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("order: list: %w", err)
	}
	return orders, nil
}

// All returns orders for the admin listing. A non-empty status must be a
// member of the enum.
func (s *OrderService) All(status string, page, limit int) ([]models.Order, orm.Pagination, error) {
	if status != "" && !models.ValidOrderStatus(status) {
		return nil, orm.Pagination{}, ErrInvalidStatus
	}
	orders, pagination, err := s.orders.All(status, page, limit)
	if err != nil {
		return nil, orm.Pagination{}, fmt.Errorf("order: list all: %w", err)
	}
	return orders, pagination, err
}

// History returns the order's append-only status trail.
func (s *OrderService) History(orderID uint) ([]models.OrderStatusHistory, error) {
	rows, err := s.orders.History(orderID)
	if err != nil {
		return nil, fmt.Errorf("order: history: %w", err)
	}
	return rows, nil
}

// Transition moves an order to a new status.
//
// The status column update is the primary operation; the history append and
// the notification email are deliberately best-effort — their failures are
// logged and swallowed so the transition itself still succeeds. Setting the
// current status again is a no-op that skips every side effect.
func (s *OrderService) Transition(orderID uint, status string) (models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return models.Order{}, ErrInvalidStatus
	}

	order, err := s.orders.FindByID(orderID)
	if err != nil {
		if orm.IsNotFound(err) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, fmt.Errorf("order: find: %w", err)
	}

	if order.Status == status {
		return order, nil
	}

	if err := s.orders.UpdateStatus(order.ID, status); err != nil {
		return models.Order{}, fmt.Errorf("order: update status: %w", err)
	}
	order.Status = status

	if err := s.orders.AppendHistory(order.ID, status); err != nil {
		logger.Error("order: append history failed", "order_id", order.ID, "status", status, "error", err)
	}

	metrics.OrderTransitions.WithLabelValues(status).Inc()
	event.FireAsync(EventOrderStatusChanged, OrderEvent{Order: order, Status: status})

	return order, nil
}

// MarkPaidByStripeSession flips the order for a completed Stripe checkout
// session to paid, with the full transition side effects.
func (s *OrderService) MarkPaidByStripeSession(sessionID string) (models.Order, error) {
	order, err := s.orders.FindByStripeSession(sessionID)
	if err != nil {
		if orm.IsNotFound(err) {
			return models.Order{}, ErrNotFound
		}
		return models.Order{}, fmt.Errorf("order: find by session: %w", err)
	}
	return s.Transition(order.ID, models.StatusPaid)
}
