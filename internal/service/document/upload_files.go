package document

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
	"github.com/firmdesk/firmdesk-backend/pkg/ctxutil"
)

// UploadFiles attaches file descriptors to a category, creating the month and
// a named "other" category lazily. Appends, never replaces.
//
// Lock guard: the category's own flag wins over the month flag. Once the
// category was locked at least once and already holds files, a non-empty
// update note is required; it is recorded at both the category and the month
// level.
func (s *Service) UploadFiles(ctx context.Context, input UploadFilesInput) (_ []*domain.File, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("document", "upload_files", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkYear(input.Year); err != nil {
		return nil, err
	}
	if len(input.Files) > s.limits.MaxFilesPerBatch {
		return nil, domain.NewValidationError("files", "too many files in one batch")
	}

	updateNote := strings.TrimSpace(input.UpdateNote)
	if len(updateNote) > s.limits.MaxNoteLength {
		return nil, domain.NewValidationError("update_note", "too long")
	}

	client, err := s.clients.Get(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}

	record, _ := client.EnsureMonth(input.Year, input.Month)

	if !record.CanMutate(input.Category) {
		return nil, fmt.Errorf("category %s of %d-%02d: %w",
			input.Category, input.Year, input.Month, domain.ErrLocked)
	}

	category, _ := record.EnsureCategory(input.Category)

	if category.WasLockedOnce && len(category.Files) > 0 && updateNote == "" {
		return nil, domain.NewValidationError("update_note",
			"required when adding files to a previously locked category")
	}

	now := time.Now().UTC()
	if updateNote != "" {
		// Recorded twice: category level for the per-bucket history, month
		// level for the period-wide feed.
		category.Notes = append(category.Notes, domain.NewNote(updateNote, actor, now))
		record.Notes = append(record.Notes, domain.NewNote(updateNote, actor, now))
	}

	attached := make([]*domain.File, 0, len(input.Files))
	for _, f := range input.Files {
		file := &domain.File{
			ID:           uuid.New(),
			URL:          f.URL,
			OriginalName: strings.TrimSpace(f.OriginalName),
			UploadedBy:   actor,
			UploadedAt:   now,
			Size:         f.Size,
			ContentType:  f.ContentType,
		}
		category.Files = append(category.Files, file)
		attached = append(attached, file)
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, fmt.Errorf("save client: %w", err)
	}

	s.logAudit(ctx, domain.AuditRecord{
		Actor:      actor,
		EntityType: domain.EntityTypeClient,
		EntityID:   &client.ID,
		Action:     domain.AuditActionUpload,
		Details: map[string]any{
			"year":     input.Year,
			"month":    input.Month,
			"category": input.Category.String(),
			"files":    len(attached),
		},
	})

	s.log.InfoContext(ctx, "files uploaded",
		slog.String("client_id", client.ID.String()),
		slog.Int("year", input.Year),
		slog.Int("month", input.Month),
		slog.String("category", input.Category.String()),
		slog.Int("count", len(attached)),
	)

	return attached, nil
}
