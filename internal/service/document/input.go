package document

import (
	"strings"

	"github.com/google/uuid"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
)

// GetOrCreateMonthInput identifies one client-month.
type GetOrCreateMonthInput struct {
	ClientID uuid.UUID
	Year     int
	Month    int
}

// Validate checks all fields and collects all errors.
func (i GetOrCreateMonthInput) Validate() error {
	var errs []domain.FieldError
	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be in 1..12"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// FileUpload is one file descriptor to attach. The blob has already been
// placed in object storage by the caller; the tree stores the reference.
type FileUpload struct {
	URL          string
	OriginalName string
	Size         int64
	ContentType  string
}

// UploadFilesInput holds the parameters for attaching files to a category.
type UploadFilesInput struct {
	ClientID uuid.UUID
	Year     int
	Month    int
	Category domain.CategorySelector
	Files    []FileUpload

	// UpdateNote explains a re-upload into a category that was locked once
	// and already holds files. Required in exactly that case.
	UpdateNote string
}

// Validate checks all fields and collects all errors.
func (i UploadFilesInput) Validate() error {
	var errs []domain.FieldError
	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be in 1..12"})
	}
	if err := i.Category.Validate(); err != nil {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid selector"})
	}
	if len(i.Files) == 0 {
		errs = append(errs, domain.FieldError{Field: "files", Message: "at least one file required"})
	}
	for _, f := range i.Files {
		if strings.TrimSpace(f.OriginalName) == "" {
			errs = append(errs, domain.FieldError{Field: "files", Message: "file name required"})
			break
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RemoveFileInput identifies one file by original name within a category.
type RemoveFileInput struct {
	ClientID uuid.UUID
	Year     int
	Month    int
	Category domain.CategorySelector
	FileName string
}

// Validate checks all fields and collects all errors.
func (i RemoveFileInput) Validate() error {
	var errs []domain.FieldError
	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be in 1..12"})
	}
	if err := i.Category.Validate(); err != nil {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid selector"})
	}
	if strings.TrimSpace(i.FileName) == "" {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetMonthLockInput holds the parameters for a month-level lock cascade.
type SetMonthLockInput struct {
	ClientID uuid.UUID
	Year     int
	Month    int
	Locked   bool
}

// Validate checks all fields and collects all errors.
func (i SetMonthLockInput) Validate() error {
	var errs []domain.FieldError
	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be in 1..12"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetCategoryLockInput holds the parameters for a targeted category lock.
type SetCategoryLockInput struct {
	ClientID uuid.UUID
	Year     int
	Month    int
	Category domain.CategorySelector
	Locked   bool
}

// Validate checks all fields and collects all errors.
func (i SetCategoryLockInput) Validate() error {
	var errs []domain.FieldError
	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be in 1..12"})
	}
	if err := i.Category.Validate(); err != nil {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid selector"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// OverviewInput identifies one client-year for the dashboard summary.
type OverviewInput struct {
	ClientID uuid.UUID
	Year     int
}

// Validate checks all fields and collects all errors.
func (i OverviewInput) Validate() error {
	if i.ClientID == uuid.Nil {
		return domain.NewValidationError("client_id", "required")
	}
	return nil
}
