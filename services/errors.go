package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrQuizComplete       = errors.New("quiz already complete")
)

// ValidationError names the input field and the constraint it violated.
type ValidationError struct {
	Field      string
	Constraint string
	Message    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, constraint, format string, args ...any) error {
	return &ValidationError{Field: field, Constraint: constraint, Message: fmt.Sprintf(format, args...)}
}
