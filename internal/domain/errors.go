package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	// ErrNotFound is the soft "no result" outcome: operations addressing a
	// missing id return it instead of a failure. Callers map it to their own
	// not-found signal; it is never logged as an error by the core.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists marks a name collision detected by the application-level
	// uniqueness scan (see DuplicateNameError).
	ErrAlreadyExists = errors.New("already exists")

	ErrValidation = errors.New("validation error")

	// ErrConstraintViolation marks a constraint rejected by the store itself
	// (unique index, check constraint). Kept distinct from ErrAlreadyExists:
	// the application scan and a database constraint are different guarantees.
	ErrConstraintViolation = errors.New("constraint violation")
)

// DuplicateNameError is returned by create/update when another record of the
// same entity type already carries the candidate name (case-insensitive).
type DuplicateNameError struct {
	Entity string
	Name   string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Entity, e.Name)
}

func (e *DuplicateNameError) Unwrap() error { return ErrAlreadyExists }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
