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

// SetMonthLock transitions the month node and cascades the same state to
// every category beneath it, overwriting independently set category
// overrides. The whole mutated tree is written back in one save: a failed
// persist leaves no partial cascade visible to later reads.
//
// Locking a not-yet-created month creates it first (lock-before-upload flow).
func (s *Service) SetMonthLock(ctx context.Context, input SetMonthLockInput) (_ domain.CascadeResult, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("document", "set_month_lock", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.CascadeResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.CascadeResult{}, err
	}
	if err := s.checkYear(input.Year); err != nil {
		return domain.CascadeResult{}, err
	}

	client, err := s.clients.Get(ctx, input.ClientID)
	if err != nil {
		return domain.CascadeResult{}, fmt.Errorf("load client: %w", err)
	}

	record, created := client.EnsureMonth(input.Year, input.Month)
	result := record.CascadeLock(input.Year, input.Month, input.Locked, actor, time.Now().UTC())

	if created || result.MonthChanged || len(result.Categories) > 0 {
		if err := s.clients.Save(ctx, client); err != nil {
			return domain.CascadeResult{}, fmt.Errorf("save client: %w", err)
		}
	}

	action := domain.AuditActionUnlock
	if input.Locked {
		action = domain.AuditActionLock
	}
	s.logAudit(ctx, domain.AuditRecord{
		Actor:      actor,
		EntityType: domain.EntityTypeClient,
		EntityID:   &client.ID,
		Action:     action,
		Details: map[string]any{
			"year":       input.Year,
			"month":      input.Month,
			"locked":     input.Locked,
			"categories": len(result.Categories),
		},
	})

	s.log.InfoContext(ctx, "month lock cascaded",
		slog.String("client_id", client.ID.String()),
		slog.Int("year", input.Year),
		slog.Int("month", input.Month),
		slog.Bool("locked", input.Locked),
		slog.Int("categories_touched", len(result.Categories)),
	)

	return result, nil
}
