package models

import (
	"time"
)

// Burger represents a menu item with a flat price.
// Ingredients are compositional data; the burger price is not derived from them.
type Burger struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:120;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	ImageURL    string    `gorm:"size:255" json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	Ingredients []BurgerIngredient `gorm:"foreignKey:BurgerID" json:"ingredients,omitempty"`
}

func (Burger) TableName() string {
	return "burgers"
}

// BurgerIngredient pairs a burger with an ingredient and a per-pairing quantity
type BurgerIngredient struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	BurgerID     uint    `gorm:"not null;uniqueIndex:uq_burger_ingredient" json:"burger_id"`
	IngredientID uint    `gorm:"not null;uniqueIndex:uq_burger_ingredient" json:"ingredient_id"`
	Quantity     float64 `gorm:"default:1" json:"quantity"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

func (BurgerIngredient) TableName() string {
	return "burger_ingredients"
}
