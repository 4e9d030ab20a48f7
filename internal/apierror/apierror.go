// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
// It doubles as a typed error value: services return it directly and the
// handler layer maps it to the matching status code.
type APIError struct {
	Status int    `json:"-"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string { return e.Detail }

func New(msg string) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Detail: msg}
}

// Unauthenticated — missing, invalid or expired token (401).
func Unauthenticated(msg string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Detail: msg}
}

// Forbidden — valid token, insufficient role or ownership (403).
func Forbidden(msg string) *APIError {
	return &APIError{Status: http.StatusForbidden, Detail: msg}
}

// NotFound — resource absent or soft-deleted (404).
func NotFound(msg string) *APIError {
	return &APIError{Status: http.StatusNotFound, Detail: msg}
}

func BadRequest(msg string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Detail: msg}
}

// StatusOf extracts the HTTP status for err. Anything that is not an
// *APIError maps to 500 so internals are never leaked.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// IsAPIError reports whether err carries a client-facing status.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// ValidationError wraps multiple field errors (422).
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validation error", Fields: fields}
}
