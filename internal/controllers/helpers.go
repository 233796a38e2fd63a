package controllers

import (
	"errors"
	"net/http"

	"github.com/burgerclub/gin-burger-api/internal/models"
	"github.com/burgerclub/gin-burger-api/internal/services"
	"github.com/gin-gonic/gin"
)

// currentActor builds the service-layer actor from the claims the JWT
// middleware put in the context
func currentActor(ctx *gin.Context) (services.Actor, bool) {
	userID, exists := ctx.Get("userID")
	if !exists {
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthenticated, "User not authenticated"))
		return services.Actor{}, false
	}

	id, ok := userID.(uint)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthenticated, "Invalid user identity"))
		return services.Actor{}, false
	}

	role, _ := ctx.Get("userRole")
	return services.Actor{ID: id, IsAdmin: role == "admin"}, true
}

// respondServiceError maps service sentinels onto HTTP statuses and API
// error codes so every failure is distinguishable to the caller
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Resource not found"))
	case errors.Is(err, services.ErrForbidden):
		ctx.JSON(http.StatusForbidden, models.NewAPIError(models.ErrForbidden, "You do not have access to this resource"))
	case errors.Is(err, services.ErrUnavailable):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrItemUnavailable, "This item is not available"))
	case errors.Is(err, services.ErrEmptyCart):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrEmptyCart, "Your cart is empty"))
	case errors.Is(err, services.ErrInvalidStatus):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidStatus, "Unknown order status"))
	case errors.Is(err, services.ErrInvalidTransition):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrInvalidTransition, "Order cannot move to that status"))
	case errors.Is(err, services.ErrDuplicateName):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrConflict, "Name already in use"))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
	}
}
