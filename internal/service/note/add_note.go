package note

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
	"github.com/firmdesk/firmdesk-backend/pkg/ctxutil"
)

// AddNote creates an immutable note at the requested tree level. The month
// record, and for category/file levels the category and file, must already
// exist.
func (s *Service) AddNote(ctx context.Context, input AddNoteInput) (_ *domain.Note, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("note", "add_note", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	if len(text) > s.limits.MaxNoteLength {
		return nil, domain.NewValidationError("text", "too long")
	}

	client, err := s.clients.Get(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}

	record := client.Month(input.Year, input.Month)
	if record == nil {
		return nil, fmt.Errorf("month %d-%02d: %w", input.Year, input.Month, domain.ErrNotFound)
	}

	note := domain.NewNote(text, actor, time.Now().UTC())

	switch input.Level {
	case domain.NoteLevelMonth:
		record.Notes = append(record.Notes, note)

	case domain.NoteLevelCategory:
		category := record.Category(input.Category)
		if category == nil {
			return nil, fmt.Errorf("category %s: %w", input.Category, domain.ErrNotFound)
		}
		category.Notes = append(category.Notes, note)

	case domain.NoteLevelFile:
		category := record.Category(input.Category)
		if category == nil {
			return nil, fmt.Errorf("category %s: %w", input.Category, domain.ErrNotFound)
		}
		file, _ := category.FileByName(input.FileName)
		if file == nil {
			return nil, fmt.Errorf("file %q: %w", input.FileName, domain.ErrNotFound)
		}
		file.Notes = append(file.Notes, note)
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, fmt.Errorf("save client: %w", err)
	}

	s.logAudit(ctx, domain.AuditRecord{
		Actor:      actor,
		EntityType: domain.EntityTypeNote,
		EntityID:   &note.ID,
		Action:     domain.AuditActionAddNote,
		Details: map[string]any{
			"year":  input.Year,
			"month": input.Month,
			"level": input.Level.String(),
		},
	})

	s.log.InfoContext(ctx, "note added",
		slog.String("client_id", client.ID.String()),
		slog.String("note_id", note.ID.String()),
		slog.Int("year", input.Year),
		slog.Int("month", input.Month),
		slog.String("level", input.Level.String()),
	)

	return note, nil
}
