package note

import (
	"strings"

	"github.com/google/uuid"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
)

// AddNoteInput holds the parameters for annotating a month, category, or file.
type AddNoteInput struct {
	ClientID uuid.UUID
	Year     int
	Month    int
	Level    domain.NoteLevel
	Category domain.CategorySelector // for category- and file-level notes
	FileName string                  // for file-level notes
	Text     string
}

// Validate checks all fields and collects all errors.
func (i AddNoteInput) Validate() error {
	var errs []domain.FieldError
	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be in 1..12"})
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}

	switch i.Level {
	case domain.NoteLevelMonth:
	case domain.NoteLevelCategory:
		if err := i.Category.Validate(); err != nil {
			errs = append(errs, domain.FieldError{Field: "category", Message: "invalid selector"})
		}
	case domain.NoteLevelFile:
		if err := i.Category.Validate(); err != nil {
			errs = append(errs, domain.FieldError{Field: "category", Message: "invalid selector"})
		}
		if strings.TrimSpace(i.FileName) == "" {
			errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: "level", Message: "unknown note level"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MarkViewedInput identifies one note by ID within a client's tree.
type MarkViewedInput struct {
	ClientID uuid.UUID
	NoteID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i MarkViewedInput) Validate() error {
	var errs []domain.FieldError
	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListNotesInput scopes an aggregated note listing. Year and Month narrow the
// listing when non-zero.
type ListNotesInput struct {
	ClientID uuid.UUID
	Year     int
	Month    int
}

// Validate checks all fields and collects all errors.
func (i ListNotesInput) Validate() error {
	var errs []domain.FieldError
	if i.ClientID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "required"})
	}
	if i.Month != 0 && (i.Month < 1 || i.Month > 12) {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be in 1..12"})
	}
	if i.Month != 0 && i.Year == 0 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "required when month is set"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
