package services

import (
	"errors"

	"github.com/burgerclub/gin-burger-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartService manages a user's mutable set of (burger, quantity) rows.
// Cart totals are live: they always reflect current catalog prices. Only
// placed orders snapshot prices.
type CartService interface {
	// Add puts quantity units of a burger in the user's cart, incrementing
	// the existing row if one is present
	Add(userID, burgerID uint, quantity int) (*models.CartItem, error)
	// Remove deletes a cart row owned by the user
	Remove(userID, cartItemID uint) error
	// UpdateQuantity sets a row's quantity exactly; quantity < 1 removes the row
	UpdateQuantity(userID, cartItemID uint, quantity int) (*models.CartItem, error)
	// View returns the user's cart rows with burgers preloaded and the live total
	View(userID uint) ([]models.CartItem, float64, error)
	// Clear deletes every cart row for the user
	Clear(userID uint) error
}

type cartService struct {
	db *gorm.DB
}

// NewCartService creates a new instance of CartService
func NewCartService(db *gorm.DB) CartService {
	return &cartService{db: db}
}

func (s *cartService) Add(userID, burgerID uint, quantity int) (*models.CartItem, error) {
	var burger models.Burger
	if err := s.db.First(&burger, burgerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !burger.IsAvailable {
		return nil, ErrUnavailable
	}

	if quantity < 1 {
		quantity = 1
	}

	// Atomic increment-or-insert on the (user_id, burger_id) unique index,
	// so concurrent adds never duplicate the row or lose an increment.
	item := models.CartItem{UserID: userID, BurgerID: burgerID, Quantity: quantity}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "burger_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"quantity": gorm.Expr("quantity + ?", quantity)}),
	}).Create(&item).Error
	if err != nil {
		return nil, err
	}

	var out models.CartItem
	if err := s.db.Preload("Burger").
		Where("user_id = ? AND burger_id = ?", userID, burgerID).
		First(&out).Error; err != nil {
		// A concurrent Remove or Clear can take the row between the upsert
		// and this read-back
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (s *cartService) Remove(userID, cartItemID uint) error {
	item, err := s.ownedItem(userID, cartItemID)
	if err != nil {
		return err
	}
	return s.db.Delete(item).Error
}

func (s *cartService) UpdateQuantity(userID, cartItemID uint, quantity int) (*models.CartItem, error) {
	item, err := s.ownedItem(userID, cartItemID)
	if err != nil {
		return nil, err
	}

	// Update-to-zero means remove: a cart never holds a zero-quantity row
	if quantity < 1 {
		if err := s.db.Delete(item).Error; err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err := s.db.Model(item).Update("quantity", quantity).Error; err != nil {
		return nil, err
	}
	item.Quantity = quantity
	return item, nil
}

func (s *cartService) View(userID uint) ([]models.CartItem, float64, error) {
	var items []models.CartItem
	if err := s.db.Preload("Burger").Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	var total float64
	for _, it := range items {
		total += it.LineTotal()
	}
	return items, total, nil
}

func (s *cartService) Clear(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// ownedItem loads a cart row and enforces the ownership boundary
func (s *cartService) ownedItem(userID, cartItemID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.First(&item, cartItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if item.UserID != userID {
		return nil, ErrForbidden
	}
	return &item, nil
}
