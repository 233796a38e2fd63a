package models

import (
	"time"
)

// CartItem is a pending intent to purchase, unique per (user, burger).
// Adding the same burger again increments Quantity instead of creating a row.
type CartItem struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;uniqueIndex:uq_user_burger_cart" json:"user_id"`
	BurgerID uint      `gorm:"not null;uniqueIndex:uq_user_burger_cart" json:"burger_id"`
	Quantity int       `gorm:"not null;default:1" json:"quantity"`
	AddedAt  time.Time `gorm:"autoCreateTime" json:"added_at"`

	Burger Burger `gorm:"foreignKey:BurgerID" json:"burger,omitempty"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// LineTotal is the live line price at current catalog prices
func (ci *CartItem) LineTotal() float64 {
	return ci.Burger.Price * float64(ci.Quantity)
}
