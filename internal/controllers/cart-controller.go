package controllers

import (
	"net/http"

	"github.com/burgerclub/gin-burger-api/internal/models"
	"github.com/burgerclub/gin-burger-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CartController handles HTTP requests for the shopping cart
type CartController interface {
	// ViewCart returns the cart rows and the live total
	ViewCart(c *gin.Context)
	// AddToCart adds a burger to the caller's cart
	AddToCart(c *gin.Context)
	// UpdateCartItem sets a row's quantity (zero removes it)
	UpdateCartItem(c *gin.Context)
	// RemoveCartItem deletes a cart row
	RemoveCartItem(c *gin.Context)
}

type cartController struct {
	service services.CartService
}

// NewCartController creates a new instance of CartController
func NewCartController(service services.CartService) *cartController {
	return &cartController{service: service}
}

// ViewCart godoc
// @Summary View the shopping cart
// @Description Returns cart items with a running total at current catalog prices
// @Tags cart
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/v1/protected/cart [get]
func (cc *cartController) ViewCart(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	items, total, err := cc.service.View(actor.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve cart"))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
	})
}

// AddToCart godoc
// @Summary Add a burger to the cart
// @Description Adding an already-present burger increments its quantity
// @Tags cart
// @Accept json
// @Produce json
// @Success 201 {object} models.CartItem
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/cart/items [post]
func (cc *cartController) AddToCart(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	var req struct {
		BurgerID uint `json:"burger_id" binding:"required"`
		Quantity int  `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	item, err := cc.service.Add(actor.ID, req.BurgerID, req.Quantity)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, item)
}

// UpdateCartItem godoc
// @Summary Update a cart item's quantity
// @Description A quantity below one removes the item from the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {object} models.CartItem
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/cart/items/{id} [put]
func (cc *cartController) UpdateCartItem(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	item, err := cc.service.UpdateQuantity(actor.ID, id, req.Quantity)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	if item == nil {
		ctx.JSON(http.StatusOK, gin.H{"removed": true})
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// RemoveCartItem godoc
// @Summary Remove an item from the cart
// @Tags cart
// @Param id path int true "Cart item ID"
// @Success 204
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/cart/items/{id} [delete]
func (cc *cartController) RemoveCartItem(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	if err := cc.service.Remove(actor.ID, id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
