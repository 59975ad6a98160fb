package apperrors

import "errors"

// Common errors
var (
	// Session errors
	ErrSessionExpired   = errors.New("session expired")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionStore     = errors.New("session store failure")

	// Transport errors
	ErrTransport    = errors.New("network error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrServerError  = errors.New("server error")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Navigation errors
	ErrRouteDenied  = errors.New("route denied")
	ErrUnknownRoute = errors.New("unknown route")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// NewValidationError wraps a field-level validation message. The message
// always comes from the validator catalog, never a generic string.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewSessionStoreError creates an error for persistent store failures
func NewSessionStoreError(err error, message string) error {
	return &CustomError{
		Err:     ErrSessionStore,
		Message: message + ": " + err.Error(),
	}
}

// Is returns whether target or any of errList matches err
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
