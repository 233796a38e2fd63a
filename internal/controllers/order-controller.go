package controllers

import (
	"net/http"

	"github.com/burgerclub/gin-burger-api/internal/models"
	"github.com/burgerclub/gin-burger-api/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for orders
type OrderController interface {
	// Checkout converts the caller's cart into an order
	Checkout(c *gin.Context)
	// Pay charges an order through the payment gateway
	Pay(c *gin.Context)
	// GetOrder returns one order with its receipt lines
	GetOrder(c *gin.Context)
	// ListMyOrders returns the caller's orders, newest first
	ListMyOrders(c *gin.Context)
	// ListAllOrders returns every order, optionally filtered by status (admin)
	ListAllOrders(c *gin.Context)
	// UpdateStatus moves an order through the status state machine (admin)
	UpdateStatus(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) *orderController {
	return &orderController{service: service}
}

// Checkout godoc
// @Summary Place an order from the cart
// @Description Creates an order with price snapshots and clears the cart, all-or-nothing
// @Tags orders
// @Produce json
// @Success 201 {object} models.Order
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/checkout [post]
func (oc *orderController) Checkout(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	order, err := oc.service.Checkout(actor.ID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, order)
}

// Pay godoc
// @Summary Pay for an order
// @Description Applies the gateway outcome: success confirms the order, failure leaves it pending for retry
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/{id}/pay [post]
func (oc *orderController) Pay(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	// Body is optional; simulate_failure exercises the declined-charge path
	// of the simulated gateway
	var req struct {
		SimulateFailure bool `json:"simulate_failure"`
	}
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
			return
		}
	}

	order, err := oc.service.Pay(actor.ID, id, req.SimulateFailure)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// GetOrder godoc
// @Summary Get an order
// @Description Owners read their own orders; admins may read any
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/{id} [get]
func (oc *orderController) GetOrder(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	order, err := oc.service.GetOrder(actor, id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// ListMyOrders godoc
// @Summary List the caller's orders
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Security BearerAuth
// @Router /api/v1/protected/orders [get]
func (oc *orderController) ListMyOrders(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	orders, err := oc.service.ListForUser(actor.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve orders"))
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// ListAllOrders godoc
// @Summary List all orders
// @Tags orders
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} models.Order
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/orders [get]
func (oc *orderController) ListAllOrders(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}

	orders, err := oc.service.ListAll(actor, ctx.Query("status"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// UpdateStatus godoc
// @Summary Update an order's status
// @Description Moves the order along pending→confirmed→preparing→ready→delivered; cancelled is reachable from any non-terminal state
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/orders/{id}/status [put]
func (oc *orderController) UpdateStatus(ctx *gin.Context) {
	actor, ok := currentActor(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	order, err := oc.service.UpdateStatus(actor, id, req.Status)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}
