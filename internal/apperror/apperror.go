// FILE: internal/apperror/apperror.go
// Typed application errors carrying an HTTP-ish status code
package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is the single error type surfaced by services. The server error
// middleware maps it onto the response envelope.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func Unauthorized(message string) *Error {
	return New(fiber.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return New(fiber.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return New(fiber.StatusConflict, message)
}

func InvalidInput(message string) *Error {
	return New(fiber.StatusBadRequest, message)
}

// Hook wraps an error reported by a before/after hook. Hooks pick their own
// status; the pipeline supplies the default when they don't.
func Hook(message string, status int) *Error {
	return New(status, message)
}

// StatusOf extracts the status code from any error chain, defaulting to 500.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return fiber.StatusInternalServerError
}
