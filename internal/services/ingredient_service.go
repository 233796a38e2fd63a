package services

import (
	"errors"

	"github.com/burgerclub/gin-burger-api/internal/models"
	"gorm.io/gorm"
)

// IngredientService provides methods to manage the ingredient catalog
type IngredientService interface {
	GetAllIngredients() ([]models.Ingredient, error)
	GetIngredientByID(id uint) (*models.Ingredient, error)
	CreateIngredient(ingredient *models.Ingredient) error
	UpdateIngredient(ingredient *models.Ingredient) error
	ToggleAvailability(id uint) (*models.Ingredient, error)
	DeleteIngredient(id uint) error
}

type ingredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new instance of IngredientService
func NewIngredientService(db *gorm.DB) IngredientService {
	return &ingredientService{db: db}
}

func (s *ingredientService) GetAllIngredients() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *ingredientService) GetIngredientByID(id uint) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	if err := s.db.First(&ingredient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

func (s *ingredientService) CreateIngredient(ingredient *models.Ingredient) error {
	var existing models.Ingredient
	if err := s.db.Where("name = ?", ingredient.Name).First(&existing).Error; err == nil {
		return ErrDuplicateName
	}
	return s.db.Create(ingredient).Error
}

func (s *ingredientService) UpdateIngredient(ingredient *models.Ingredient) error {
	var existing models.Ingredient
	if err := s.db.First(&existing, ingredient.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Save(ingredient).Error
}

func (s *ingredientService) ToggleAvailability(id uint) (*models.Ingredient, error) {
	ingredient, err := s.GetIngredientByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(ingredient).Update("is_available", !ingredient.IsAvailable).Error; err != nil {
		return nil, err
	}
	ingredient.IsAvailable = !ingredient.IsAvailable
	return ingredient, nil
}

func (s *ingredientService) DeleteIngredient(id uint) error {
	ingredient, err := s.GetIngredientByID(id)
	if err != nil {
		return err
	}
	// Only the composition rows reference an ingredient, drop them with it
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ingredient_id = ?", id).Delete(&models.BurgerIngredient{}).Error; err != nil {
			return err
		}
		return tx.Delete(ingredient).Error
	})
}
