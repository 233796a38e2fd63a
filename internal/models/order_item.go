package models

// OrderItem is a permanent receipt line. PriceAtOrder is the burger's unit
// price captured at checkout and is immune to later catalog price changes.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"not null;index" json:"order_id"`
	BurgerID     uint    `gorm:"not null" json:"burger_id"`
	Quantity     int     `gorm:"not null" json:"quantity"`
	PriceAtOrder float64 `gorm:"not null" json:"price_at_order"`

	Burger Burger `gorm:"foreignKey:BurgerID" json:"burger,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
