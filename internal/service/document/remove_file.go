package document

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
	"github.com/firmdesk/firmdesk-backend/pkg/ctxutil"
)

// RemoveFile detaches a file by original name and returns its descriptor.
// The caller deletes the blob from object storage afterwards; the tree never
// touches it. Any deletion-reason note is the caller's concern too.
func (s *Service) RemoveFile(ctx context.Context, input RemoveFileInput) (_ *domain.File, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("document", "remove_file", err, start) }()

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

	client, err := s.clients.Get(ctx, input.ClientID)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}

	record := client.Month(input.Year, input.Month)
	if record == nil {
		return nil, fmt.Errorf("month %d-%02d: %w", input.Year, input.Month, domain.ErrNotFound)
	}

	if !record.CanMutate(input.Category) {
		return nil, fmt.Errorf("category %s of %d-%02d: %w",
			input.Category, input.Year, input.Month, domain.ErrLocked)
	}

	category := record.Category(input.Category)
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", input.Category, domain.ErrNotFound)
	}

	file, idx := category.FileByName(input.FileName)
	if file == nil {
		return nil, fmt.Errorf("file %q: %w", input.FileName, domain.ErrNotFound)
	}
	category.RemoveFileAt(idx)

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, fmt.Errorf("save client: %w", err)
	}

	s.logAudit(ctx, domain.AuditRecord{
		Actor:      actor,
		EntityType: domain.EntityTypeFile,
		EntityID:   &file.ID,
		Action:     domain.AuditActionDeleteFile,
		Details: map[string]any{
			"year":     input.Year,
			"month":    input.Month,
			"category": input.Category.String(),
			"name":     file.OriginalName,
		},
	})

	s.log.InfoContext(ctx, "file removed",
		slog.String("client_id", client.ID.String()),
		slog.Int("year", input.Year),
		slog.Int("month", input.Month),
		slog.String("category", input.Category.String()),
		slog.String("name", file.OriginalName),
	)

	return file, nil
}
