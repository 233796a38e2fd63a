package controllers

import (
	"net/http"

	"github.com/burgerclub/gin-burger-api/internal/models"
	"github.com/burgerclub/gin-burger-api/internal/services"
	"github.com/gin-gonic/gin"
)

// IngredientController handles HTTP requests for the ingredient catalog
type IngredientController interface {
	GetAllIngredients(c *gin.Context)
	CreateIngredient(c *gin.Context)
	UpdateIngredient(c *gin.Context)
	ToggleAvailability(c *gin.Context)
	DeleteIngredient(c *gin.Context)
}

type ingredientController struct {
	service services.IngredientService
}

// NewIngredientController creates a new instance of IngredientController
func NewIngredientController(service services.IngredientService) *ingredientController {
	return &ingredientController{service: service}
}

type ingredientRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"gte=0"`
}

// GetAllIngredients godoc
// @Summary List all ingredients
// @Tags ingredients
// @Produce json
// @Success 200 {array} models.Ingredient
// @Security BearerAuth
// @Router /api/v1/protected/admin/ingredients [get]
func (ic *ingredientController) GetAllIngredients(ctx *gin.Context) {
	ingredients, err := ic.service.GetAllIngredients()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve ingredients"))
		return
	}
	ctx.JSON(http.StatusOK, ingredients)
}

// CreateIngredient godoc
// @Summary Create an ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Success 201 {object} models.Ingredient
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/ingredients [post]
func (ic *ingredientController) CreateIngredient(ctx *gin.Context) {
	var req ingredientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	ingredient := models.Ingredient{Name: req.Name, Price: req.Price, IsAvailable: true}
	if err := ic.service.CreateIngredient(&ingredient); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, ingredient)
}

// UpdateIngredient godoc
// @Summary Update an ingredient
// @Tags ingredients
// @Accept json
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} models.Ingredient
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/ingredients/{id} [put]
func (ic *ingredientController) UpdateIngredient(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	existing, err := ic.service.GetIngredientByID(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	var req ingredientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	ingredient := models.Ingredient{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		IsAvailable: existing.IsAvailable,
		CreatedAt:   existing.CreatedAt,
	}
	if err := ic.service.UpdateIngredient(&ingredient); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ingredient)
}

// ToggleAvailability godoc
// @Summary Toggle an ingredient's availability
// @Tags ingredients
// @Produce json
// @Param id path int true "Ingredient ID"
// @Success 200 {object} models.Ingredient
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/ingredients/{id}/toggle-availability [post]
func (ic *ingredientController) ToggleAvailability(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	ingredient, err := ic.service.ToggleAvailability(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ingredient)
}

// DeleteIngredient godoc
// @Summary Delete an ingredient
// @Tags ingredients
// @Param id path int true "Ingredient ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/ingredients/{id} [delete]
func (ic *ingredientController) DeleteIngredient(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	if err := ic.service.DeleteIngredient(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
