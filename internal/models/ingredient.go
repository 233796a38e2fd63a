package models

import (
	"time"
)

// Ingredient is a named component that burgers are composed of
type Ingredient struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:80;not null" json:"name"`
	Price       float64   `gorm:"default:0" json:"price"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
