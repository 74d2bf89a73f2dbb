// Package response defines the uniform API envelope and the central error
// handler. Every endpoint replies with {success, message, data?, errors?};
// internal error details never leave the process.
package response

import (
	"errors"
	"log"

	"go-invoice-pos/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Success writes a successful envelope with the given status code.
func Success(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail writes an error envelope with an optional per-field error map.
func Fail(c *fiber.Ctx, status int, message string, fieldErrors map[string]string) error {
	return c.Status(status).JSON(Envelope{
		Success: false,
		Message: message,
		Errors:  fieldErrors,
	})
}

// ErrorHandler is installed in fiber.Config and maps service errors onto
// status codes. Anything unrecognized becomes a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	// Validation errors: 422 with per-field tags
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, fe := range ve {
			fields[fe.Field()] = fe.Tag()
		}
		return Fail(c, fiber.StatusUnprocessableEntity, "Validation failed", fields)
	}

	// Fiber errors keep their own status code and message
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Fail(c, fe.Code, fe.Message, nil)
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return Fail(c, fiber.StatusNotFound, err.Error(), nil)
	case errors.Is(err, apperr.ErrDuplicate), errors.Is(err, gorm.ErrDuplicatedKey):
		return Fail(c, fiber.StatusConflict, err.Error(), nil)
	case errors.Is(err, apperr.ErrInsufficientStock),
		errors.Is(err, apperr.ErrOverpayment),
		errors.Is(err, apperr.ErrInvalidInput):
		return Fail(c, fiber.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, apperr.ErrInvalidCredentials), errors.Is(err, apperr.ErrUserInactive):
		return Fail(c, fiber.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, apperr.ErrForbidden):
		return Fail(c, fiber.StatusForbidden, err.Error(), nil)
	}

	log.Printf("internal error: %v", err)
	return Fail(c, fiber.StatusInternalServerError, "Server Error", nil)
}
