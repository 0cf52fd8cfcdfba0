package domain

import "fmt"

// ValidationError is a configuration error: bad input detected before any
// solver runs. It names the offending field so the caller can fix the
// request instead of guessing.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError builds a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
