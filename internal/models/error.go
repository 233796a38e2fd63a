package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthenticated  = "UNAUTHENTICATED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Cart and order errors
	ErrItemUnavailable   = "ITEM_UNAVAILABLE"
	ErrEmptyCart         = "EMPTY_CART"
	ErrInvalidStatus     = "INVALID_STATUS"
	ErrInvalidTransition = "INVALID_TRANSITION"
	ErrPaymentFailed     = "PAYMENT_FAILED"

	// Account errors
	ErrInvalidCredentials = "INVALID_CREDENTIALS"
	ErrAccountDeactivated = "ACCOUNT_DEACTIVATED"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
