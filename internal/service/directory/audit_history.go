package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
	"github.com/firmdesk/firmdesk-backend/pkg/ctxutil"
)

// EntityHistoryInput scopes an audit history read to one entity.
type EntityHistoryInput struct {
	EntityType domain.EntityType
	EntityID   uuid.UUID
	Limit      int
}

// Validate checks all fields and collects all errors.
func (i EntityHistoryInput) Validate() error {
	var errs []domain.FieldError
	if !i.EntityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "unknown entity type"})
	}
	if i.EntityID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EntityHistory returns the audit trail for one entity, newest first.
// Staff only.
func (s *Service) EntityHistory(ctx context.Context, input EntityHistoryInput) (_ []domain.AuditRecord, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("directory", "entity_history", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok || !actor.Kind.IsStaff() {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	records, err := s.audit.ListByEntity(ctx, input.EntityType, input.EntityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list entity history: %w", err)
	}
	return records, nil
}

// ActorHistoryInput scopes an audit history read to one acting identity.
type ActorHistoryInput struct {
	ActorID uuid.UUID
	Limit   int
	Offset  int
}

// ActorHistory returns the records one actor produced, newest first.
// Staff only.
func (s *Service) ActorHistory(ctx context.Context, input ActorHistoryInput) (_ []domain.AuditRecord, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("directory", "actor_history", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok || !actor.Kind.IsStaff() {
		return nil, domain.ErrUnauthorized
	}

	if input.ActorID == uuid.Nil {
		return nil, domain.NewValidationError("actor_id", "required")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	records, err := s.audit.ListByActor(ctx, input.ActorID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list actor history: %w", err)
	}
	return records, nil
}
