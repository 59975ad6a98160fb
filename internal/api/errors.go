package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a response the backend answered with a non-2xx status.
// Message carries the server's own error string when one was supplied.
type APIError struct {
	Status    int
	Message   string
	RequestID string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// ServerMessage returns the backend-supplied message, or "" when the
// server sent none. Callers substitute their own fallback string.
func ServerMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
