package assignment

import (
	"strings"

	"github.com/google/uuid"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
)

// AssignInput carries the parameters for creating a mirrored assignment pair.
type AssignInput struct {
	ClientID   uuid.UUID
	EmployeeID uuid.UUID
	Year       int
	Month      int
	Task       domain.TaskKind
}

func (i AssignInput) Validate() error {
	var errs []domain.FieldError
	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.EmployeeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "employee_id", Message: "required"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !i.Task.IsValid() {
		errs = append(errs, domain.FieldError{Field: "task", Message: "unknown task kind"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RemoveInput identifies one active mirrored assignment to tombstone.
type RemoveInput struct {
	ClientID   uuid.UUID
	EmployeeID uuid.UUID
	Year       int
	Month      int
	Task       domain.TaskKind
	Reason     string
}

func (i RemoveInput) Validate() error {
	var errs []domain.FieldError
	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.EmployeeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "employee_id", Message: "required"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !i.Task.IsValid() {
		errs = append(errs, domain.FieldError{Field: "task", Message: "unknown task kind"})
	}
	if strings.TrimSpace(i.Reason) == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// MarkDoneInput identifies one active mirrored assignment to complete.
type MarkDoneInput struct {
	ClientID   uuid.UUID
	EmployeeID uuid.UUID
	Year       int
	Month      int
	Task       domain.TaskKind
}

func (i MarkDoneInput) Validate() error {
	var errs []domain.FieldError
	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.EmployeeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "employee_id", Message: "required"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be between 1 and 12"})
	}
	if !i.Task.IsValid() {
		errs = append(errs, domain.FieldError{Field: "task", Message: "unknown task kind"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
