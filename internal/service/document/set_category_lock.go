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

// SetCategoryLock transitions only the targeted category; the month flag and
// sibling categories are untouched. A not-yet-existing "other" category is
// created (unlocked shape) before being transitioned. Returns whether the
// category actually changed state.
func (s *Service) SetCategoryLock(ctx context.Context, input SetCategoryLockInput) (_ bool, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("document", "set_category_lock", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return false, err
	}
	if err := s.checkYear(input.Year); err != nil {
		return false, err
	}

	client, err := s.clients.Get(ctx, input.ClientID)
	if err != nil {
		return false, fmt.Errorf("load client: %w", err)
	}

	record, createdMonth := client.EnsureMonth(input.Year, input.Month)
	category, createdCategory := record.EnsureCategory(input.Category)
	changed := category.SetLock(input.Locked, actor, time.Now().UTC())

	if createdMonth || createdCategory || changed {
		if err := s.clients.Save(ctx, client); err != nil {
			return false, fmt.Errorf("save client: %w", err)
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
			"year":     input.Year,
			"month":    input.Month,
			"category": input.Category.String(),
			"locked":   input.Locked,
		},
	})

	s.log.InfoContext(ctx, "category lock set",
		slog.String("client_id", client.ID.String()),
		slog.Int("year", input.Year),
		slog.Int("month", input.Month),
		slog.String("category", input.Category.String()),
		slog.Bool("locked", input.Locked),
		slog.Bool("changed", changed),
	)

	return changed, nil
}
