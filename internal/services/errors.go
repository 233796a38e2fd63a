package services

import "errors"

// Sentinel errors returned by the service layer. Controllers translate
// these into HTTP statuses and API error codes.
var (
	// ErrNotFound means the referenced entity does not exist
	ErrNotFound = errors.New("not_found")
	// ErrForbidden means the caller does not own the record or lacks the role
	ErrForbidden = errors.New("forbidden")
	// ErrUnavailable means the catalog item is disabled
	ErrUnavailable = errors.New("item_unavailable")
	// ErrEmptyCart means checkout was attempted on an empty cart
	ErrEmptyCart = errors.New("empty_cart")
	// ErrInvalidStatus means the status label is not one of the recognized six
	ErrInvalidStatus = errors.New("invalid_status")
	// ErrInvalidTransition means the label is known but unreachable from the current status
	ErrInvalidTransition = errors.New("invalid_transition")
	// ErrDuplicateName means a unique catalog or account name is already taken
	ErrDuplicateName = errors.New("duplicate_name")
)

// Actor identifies the authenticated caller of a service operation.
// Every ownership check compares record.UserID against Actor.ID; every
// admin-gated operation checks Actor.IsAdmin as its first statement.
type Actor struct {
	ID      uint
	IsAdmin bool
}
