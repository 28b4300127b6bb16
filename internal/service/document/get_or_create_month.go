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

// GetOrCreateMonth returns the month record for (client, year, month),
// creating a zero-valued one if absent. Idempotent and safe to retry: an
// existing record is reused, never overwritten, and nothing is persisted
// unless a node was actually created.
func (s *Service) GetOrCreateMonth(ctx context.Context, input GetOrCreateMonthInput) (_ *domain.MonthRecord, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("document", "get_or_create_month", err, start) }()

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

	record, created := client.EnsureMonth(input.Year, input.Month)
	if !created {
		return record, nil
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, fmt.Errorf("save client: %w", err)
	}

	s.log.InfoContext(ctx, "month record created",
		slog.String("client_id", client.ID.String()),
		slog.Int("year", input.Year),
		slog.Int("month", input.Month),
		slog.String("actor_id", actor.ID.String()),
	)

	return record, nil
}
