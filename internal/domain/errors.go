package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrValidation     = errors.New("validation error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("conflict")
	ErrCapacity       = errors.New("capacity exceeded")
	ErrPrecondition   = errors.New("precondition failed")
	ErrLocked         = errors.New("locked")
	ErrInconsistency  = errors.New("mirrored records disagree")
	ErrPartialFailure = errors.New("partial failure")
)

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
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
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

// PartialFailureError reports a paired write that failed after its first half
// succeeded. RollbackComplete tells the caller whether the compensating write
// restored the first entity; when false an operator has to reconcile by hand.
type PartialFailureError struct {
	Op               string
	RollbackComplete bool
	RollbackErr      error
	Cause            error
}

func (e *PartialFailureError) Error() string {
	if e.RollbackComplete {
		return fmt.Sprintf("%s: second write failed, rollback completed: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: second write failed, rollback FAILED (%v): %v", e.Op, e.RollbackErr, e.Cause)
}

func (e *PartialFailureError) Unwrap() error { return ErrPartialFailure }
