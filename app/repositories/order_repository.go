package repositories

import (
	"github.com/shashiranjanraj/kashvi-store/app/models"
	"github.com/shashiranjanraj/kashvi-store/pkg/orm"
)

// OrderRepository handles database operations for Order and its children.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// FindByID returns one order with items and user preloaded.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var o models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("Items").
		Preload("Items.Gemstone").
		Preload("User").
		Where("id = ?", id).
		First(&o)
	return o, err
}

// FindByStripeSession returns the order created for a Stripe checkout session.
func (r *OrderRepository) FindByStripeSession(sessionID string) (models.Order, error) {
	var o models.Order
	err := orm.DB().Model(&models.Order{}).
		Where("stripe_session_id = ?", sessionID).
		First(&o)
	return o, err
}

// ForUser returns the user's orders, newest first.
func (r *OrderRepository) ForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := orm.DB().Model(&models.Order{}).
		Preload("Items").
		Preload("Items.Gemstone").
		Where("user_id = ?", userID).
		Order("id desc").
		Get(&orders)
	return orders, err
}

// All returns orders for the admin listing, optionally filtered by status.
func (r *OrderRepository) All(status string, page, limit int) ([]models.Order, orm.Pagination, error) {
	q := orm.DB().Model(&models.Order{}).
		Preload("Items").
		Preload("User").
		Order("id desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	pagination, err := q.GetWithPagination(&orders, page, limit)
	return orders, pagination, err
}

// UpdateStatus sets the order's status column.
func (r *OrderRepository) UpdateStatus(orderID uint, status string) error {
	return orm.DB().Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("status", status)
}

// AppendHistory writes an append-only status history row.
func (r *OrderRepository) AppendHistory(orderID uint, status string) error {
	return orm.DB().Create(&models.OrderStatusHistory{OrderID: orderID, Status: status})
}

// History returns the order's status history rows, oldest first.
func (r *OrderRepository) History(orderID uint) ([]models.OrderStatusHistory, error) {
	var rows []models.OrderStatusHistory
	err := orm.DB().Model(&models.OrderStatusHistory{}).
		Where("order_id = ?", orderID).
		Order("id asc").
		Get(&rows)
	return rows, err
}

// HasPaidOrderWithGemstone reports whether the user owns a paid order that
// contains the gemstone. This is the verified-buyer review gate.
func (r *OrderRepository) HasPaidOrderWithGemstone(userID, gemstoneID uint) (bool, error) {
	var n int64
	err := orm.DB().Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.status = ? AND order_items.gemstone_id = ?",
			userID, models.StatusPaid, gemstoneID).
		Count(&n)
	return n > 0, err
}
