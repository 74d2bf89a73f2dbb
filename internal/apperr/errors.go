// Package apperr defines the sentinel errors the service layer returns.
// The central HTTP error handler maps them onto status codes, so services
// never deal in HTTP concepts.
package apperr

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrDuplicate         = errors.New("already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOverpayment       = errors.New("payment amount exceeds pending balance")
	ErrInvalidInput      = errors.New("invalid input")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is deactivated")
	ErrForbidden          = errors.New("not authorized for this action")
)
