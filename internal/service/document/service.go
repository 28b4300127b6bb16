// Package document implements the client document tree operations: lazy
// month/category creation, file attach/remove under lock guards, the
// month-level lock cascade, and the per-month dashboard overview.
package document

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/firmdesk/firmdesk-backend/internal/config"
	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
)

type clientRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	Save(ctx context.Context, c *domain.Client) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// Service provides document tree operations.
type Service struct {
	clients clientRepo
	audit   auditLogger
	limits  config.PortalConfig
	log     *slog.Logger
}

// NewService creates a new Document service.
func NewService(
	log *slog.Logger,
	clients clientRepo,
	audit auditLogger,
	limits config.PortalConfig,
) *Service {
	return &Service{
		clients: clients,
		audit:   audit,
		limits:  limits,
		log:     log.With("service", "document"),
	}
}

// checkYear validates the year against the configured portal bounds.
func (s *Service) checkYear(year int) error {
	if year < s.limits.MinYear || year > s.limits.MaxYear {
		return domain.NewValidationError("year", "out of range")
	}
	return nil
}

// logAudit appends an audit record. Failures are logged and counted, never
// returned: the audit trail is fire-and-forget.
func (s *Service) logAudit(ctx context.Context, record domain.AuditRecord) {
	record.ID = uuid.New()
	record.CreatedAt = time.Now().UTC()
	if err := s.audit.Log(ctx, record); err != nil {
		obs.AuditFailure()
		s.log.ErrorContext(ctx, "audit append failed",
			slog.String("action", record.Action.String()),
			slog.Any("error", err),
		)
	}
}
