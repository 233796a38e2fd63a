package models

import (
	"time"
)

// Order status labels
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Payment status labels
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Order is an immutable, price-snapshotted commitment created from a cart.
// TotalPrice and the items never change after creation; only Status,
// PaymentStatus and PaymentRef move through their lifecycles.
type Order struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	TotalPrice    float64   `gorm:"not null" json:"total_price"`
	Status        string    `gorm:"size:20;default:'pending'" json:"status"`
	PaymentStatus string    `gorm:"size:20;default:'pending'" json:"payment_status"`
	PaymentRef    string    `gorm:"size:255" json:"payment_ref,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

// IsTerminal reports whether the order can leave its current status
func (o *Order) IsTerminal() bool {
	return o.Status == StatusDelivered || o.Status == StatusCancelled
}

// ValidStatus reports whether label is one of the six recognized statuses
func ValidStatus(label string) bool {
	switch label {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
