package directory

import (
	"net/mail"
	"strings"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
)

// RegisterClientInput carries a new client profile.
type RegisterClientInput struct {
	Name         string
	ContactEmail string
}

func (i RegisterClientInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.ContactEmail != "" {
		if _, err := mail.ParseAddress(i.ContactEmail); err != nil {
			errs = append(errs, domain.FieldError{Field: "contact_email", Message: "invalid email address"})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RegisterEmployeeInput carries a new employee profile.
type RegisterEmployeeInput struct {
	Name  string
	Email string
}

func (i RegisterEmployeeInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.Email != "" {
		if _, err := mail.ParseAddress(i.Email); err != nil {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListClientsInput narrows the client directory.
type ListClientsInput struct {
	Query  string
	Limit  int
	Offset int
}

// ListEmployeesInput narrows the employee directory.
type ListEmployeesInput struct {
	Query      string
	OnlyActive bool
	Limit      int
	Offset     int
}
