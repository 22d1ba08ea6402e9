package models

import (
	"time"

	"gorm.io/gorm"
)

// Order lifecycle statuses. Transitions are admin-driven except "paid",
// which the payment webhook may also set.
const (
	StatusPending    = "pending"
	StatusPaid       = "paid"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// OrderStatuses lists every valid status value.
var OrderStatuses = []string{
	StatusPending, StatusPaid, StatusProcessing,
	StatusShipped, StatusDelivered, StatusCancelled,
}

// ValidOrderStatus reports whether s is a member of the status enum.
func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Order is a customer purchase. Orders are never deleted; status is the only
// mutable field after checkout.
type Order struct {
	gorm.Model
	OrderNumber     string      `gorm:"size:64;uniqueIndex;not null" json:"order_number"`
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	User            *User       `json:"user,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	Total           float64     `gorm:"not null;default:0" json:"total"`
	Status          string      `gorm:"size:50;not null;default:pending;index" json:"status"`
	PaymentMethod   string      `gorm:"size:50;default:cod" json:"payment_method"`
	StripeSessionID string      `gorm:"size:255;index" json:"-"`
}

// OrderItem snapshots one line of an order. Price is captured at checkout so
// later catalog edits never change historical totals.
type OrderItem struct {
	gorm.Model
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	GemstoneID uint      `gorm:"not null;index" json:"gemstone_id"`
	Gemstone   *Gemstone `json:"gemstone,omitempty"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	Price      float64   `gorm:"not null" json:"price"`
}

// OrderStatusHistory is an append-only audit row. No update or delete path
// exists anywhere in the codebase.
type OrderStatusHistory struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Status    string    `gorm:"size:50;not null" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
