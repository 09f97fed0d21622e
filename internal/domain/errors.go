package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by stores when no record has the requested id.
var ErrNotFound = errors.New("not found")

// ErrInvalidCredentials is returned by the auth service on a failed login.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError reports a rejected field so callers can surface the
// message next to the offending input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
