package controllers

import (
	"net/http"
	"strconv"

	"github.com/burgerclub/gin-burger-api/internal/models"
	"github.com/burgerclub/gin-burger-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MenuController handles HTTP requests for the burger catalog
type MenuController interface {
	// GetAllBurgers retrieves the menu
	GetAllBurgers(c *gin.Context)
	// GetBurgerByID retrieves a burger by its ID
	GetBurgerByID(c *gin.Context)
	// CreateBurger creates a new burger (admin)
	CreateBurger(c *gin.Context)
	// UpdateBurger updates an existing burger (admin)
	UpdateBurger(c *gin.Context)
	// ToggleAvailability flips a burger's availability flag (admin)
	ToggleAvailability(c *gin.Context)
	// DeleteBurger deletes a burger by its ID (admin)
	DeleteBurger(c *gin.Context)
}

type menuController struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService) *menuController {
	return &menuController{service: service}
}

type burgerRequest struct {
	Name        string                         `json:"name" binding:"required"`
	Description string                         `json:"description"`
	Price       float64                        `json:"price" binding:"required,gt=0"`
	ImageURL    string                         `json:"image_url"`
	Ingredients []services.IngredientSelection `json:"ingredients"`
}

// GetAllBurgers godoc
// @Summary Get the burger menu
// @Tags menu
// @Produce json
// @Success 200 {array} models.Burger
// @Router /api/v1/public/burgers [get]
func (mc *menuController) GetAllBurgers(ctx *gin.Context) {
	burgers, err := mc.service.GetAllBurgers()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve menu"))
		return
	}
	ctx.JSON(http.StatusOK, burgers)
}

// GetBurgerByID godoc
// @Summary Get a burger by ID
// @Tags menu
// @Produce json
// @Param id path int true "Burger ID"
// @Success 200 {object} models.Burger
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/burgers/{id} [get]
func (mc *menuController) GetBurgerByID(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	burger, err := mc.service.GetBurgerByID(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, burger)
}

// CreateBurger godoc
// @Summary Create a new burger
// @Tags menu
// @Accept json
// @Produce json
// @Param burger body burgerRequest true "Burger"
// @Success 201 {object} models.Burger
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/burgers [post]
func (mc *menuController) CreateBurger(ctx *gin.Context) {
	var req burgerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	burger := models.Burger{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}
	if err := mc.service.CreateBurger(&burger, req.Ingredients); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, burger)
}

// UpdateBurger godoc
// @Summary Update a burger
// @Tags menu
// @Accept json
// @Produce json
// @Param id path int true "Burger ID"
// @Param burger body burgerRequest true "Burger"
// @Success 200 {object} models.Burger
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/burgers/{id} [put]
func (mc *menuController) UpdateBurger(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	existing, err := mc.service.GetBurgerByID(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	var req burgerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	burger := models.Burger{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsAvailable: existing.IsAvailable,
		CreatedAt:   existing.CreatedAt,
	}
	if err := mc.service.UpdateBurger(&burger, req.Ingredients); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, burger)
}

// ToggleAvailability godoc
// @Summary Toggle a burger's availability
// @Tags menu
// @Produce json
// @Param id path int true "Burger ID"
// @Success 200 {object} models.Burger
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/burgers/{id}/toggle-availability [post]
func (mc *menuController) ToggleAvailability(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	burger, err := mc.service.ToggleAvailability(id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, burger)
}

// DeleteBurger godoc
// @Summary Delete a burger
// @Description Removes the burger and its cart/composition rows; order history keeps its price snapshots
// @Tags menu
// @Param id path int true "Burger ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/burgers/{id} [delete]
func (mc *menuController) DeleteBurger(ctx *gin.Context) {
	id, ok := paramID(ctx)
	if !ok {
		return
	}
	if err := mc.service.DeleteBurger(id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// paramID parses the :id path parameter
func paramID(ctx *gin.Context) (uint, bool) {
	raw, exists := ctx.Params.Get("id")
	if !exists {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Missing ID"))
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid ID format"))
		return 0, false
	}
	return uint(id), true
}
