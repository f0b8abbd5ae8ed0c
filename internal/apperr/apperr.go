// Package apperr holds the error kinds the HTTP layer knows how to render.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

var (
	ErrConflict           = errors.New("User already exists with this email")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrAccountDeactivated = errors.New("Account is deactivated")
	ErrUnauthenticated    = errors.New("Access token required")
	ErrForbidden          = errors.New("Insufficient permissions")
	ErrNotFound           = errors.New("not found")
)

// FieldError 單一欄位的驗證失敗
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"Valid email is required"`
}

// ValidationError carries every violated field constraint of one request.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NotFound wraps ErrNotFound with a caller-facing message such as "Contact not found".
func NotFound(message string) error {
	return &notFoundError{msg: message}
}

type notFoundError struct{ msg string }

func (e *notFoundError) Error() string { return e.msg }
func (e *notFoundError) Unwrap() error { return ErrNotFound }

// Status maps an error to its HTTP status. Unknown errors are 500.
func Status(err error) int {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrAccountDeactivated),
		errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
