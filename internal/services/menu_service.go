package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/burgerclub/gin-burger-api/internal/cache"
	"github.com/burgerclub/gin-burger-api/internal/models"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// IngredientSelection is one row of a burger's composition edit. Quantity
// arrives as a string (form-style input) and malformed values are skipped
// with a warning rather than failing the whole edit.
type IngredientSelection struct {
	IngredientID uint   `json:"ingredient_id"`
	Quantity     string `json:"quantity"`
}

// MenuService provides methods to manage the burger catalog
type MenuService interface {
	// GetAllBurgers retrieves the menu, served from cache when possible
	GetAllBurgers() ([]models.Burger, error)
	// GetBurgerByID retrieves a burger with its ingredient composition
	GetBurgerByID(id uint) (*models.Burger, error)
	// CreateBurger creates a new burger with an optional ingredient list
	CreateBurger(burger *models.Burger, selections []IngredientSelection) error
	// UpdateBurger updates a burger and replaces its ingredient list
	UpdateBurger(burger *models.Burger, selections []IngredientSelection) error
	// ToggleAvailability flips the availability flag
	ToggleAvailability(id uint) (*models.Burger, error)
	// DeleteBurger removes a burger, cascading to cart and composition rows
	// only; historical order items keep their snapshots
	DeleteBurger(id uint) error
}

type menuService struct {
	db    *gorm.DB
	cache *cache.MenuCache
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *gorm.DB, menuCache *cache.MenuCache) MenuService {
	return &menuService{db: db, cache: menuCache}
}

func (s *menuService) GetAllBurgers() ([]models.Burger, error) {
	ctx := context.Background()
	if burgers, ok := s.cache.GetMenu(ctx); ok {
		return burgers, nil
	}

	var burgers []models.Burger
	if err := s.db.Preload("Ingredients").Preload("Ingredients.Ingredient").Find(&burgers).Error; err != nil {
		return nil, err
	}
	s.cache.SetMenu(ctx, burgers)
	return burgers, nil
}

func (s *menuService) GetBurgerByID(id uint) (*models.Burger, error) {
	var burger models.Burger
	err := s.db.Preload("Ingredients").Preload("Ingredients.Ingredient").First(&burger, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &burger, nil
}

func (s *menuService) CreateBurger(burger *models.Burger, selections []IngredientSelection) error {
	var existing models.Burger
	if err := s.db.Where("name = ?", burger.Name).First(&existing).Error; err == nil {
		return ErrDuplicateName
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(burger).Error; err != nil {
			return err
		}
		return s.applySelections(tx, burger.ID, selections)
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate(context.Background())
	return nil
}

func (s *menuService) UpdateBurger(burger *models.Burger, selections []IngredientSelection) error {
	var existing models.Burger
	if err := s.db.First(&existing, burger.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	// Renames honor the same uniqueness rule as creation
	var clash models.Burger
	if err := s.db.Where("name = ? AND id <> ?", burger.Name, burger.ID).First(&clash).Error; err == nil {
		return ErrDuplicateName
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(burger).Error; err != nil {
			return err
		}
		// Composition edits replace the association rows wholesale
		if err := tx.Where("burger_id = ?", burger.ID).Delete(&models.BurgerIngredient{}).Error; err != nil {
			return err
		}
		return s.applySelections(tx, burger.ID, selections)
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate(context.Background())
	return nil
}

func (s *menuService) ToggleAvailability(id uint) (*models.Burger, error) {
	burger, err := s.GetBurgerByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(burger).Update("is_available", !burger.IsAvailable).Error; err != nil {
		return nil, err
	}
	burger.IsAvailable = !burger.IsAvailable
	s.cache.Invalidate(context.Background())
	return burger, nil
}

func (s *menuService) DeleteBurger(id uint) error {
	burger, err := s.GetBurgerByID(id)
	if err != nil {
		return err
	}

	// Explicit referential cleanup: cart rows and composition rows go with
	// the burger; order items stay, they hold price snapshots not live refs.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("burger_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("burger_id = ?", id).Delete(&models.BurgerIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(burger).Error
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate(context.Background())
	return nil
}

// applySelections writes the burger's ingredient rows. Rows with an unknown
// ingredient or a malformed quantity are skipped with a warning; a bad row
// never fails the whole edit.
func (s *menuService) applySelections(tx *gorm.DB, burgerID uint, selections []IngredientSelection) error {
	for _, sel := range selections {
		var ingredient models.Ingredient
		if err := tx.First(&ingredient, sel.IngredientID).Error; err != nil {
			log.WithFields(log.Fields{
				"burger_id":     burgerID,
				"ingredient_id": sel.IngredientID,
			}).Warn("Skipping unknown ingredient in composition edit")
			continue
		}

		quantity := 1.0
		if sel.Quantity != "" {
			parsed, err := strconv.ParseFloat(sel.Quantity, 64)
			if err != nil || parsed <= 0 {
				log.WithFields(log.Fields{
					"burger_id":     burgerID,
					"ingredient_id": sel.IngredientID,
					"quantity":      sel.Quantity,
				}).Warn("Skipping malformed ingredient quantity")
				continue
			}
			quantity = parsed
		}

		row := models.BurgerIngredient{
			BurgerID:     burgerID,
			IngredientID: sel.IngredientID,
			Quantity:     quantity,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
