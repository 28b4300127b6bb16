// Package note implements the note visibility tracker: per-viewer read
// ledger updates, unviewed-count aggregation over the whole document tree,
// and note creation at any tree level.
package note

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

// Service provides note tracking operations.
type Service struct {
	clients clientRepo
	audit   auditLogger
	limits  config.PortalConfig
	log     *slog.Logger
}

// NewService creates a new Note service.
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
		log:     log.With("service", "note"),
	}
}

// logAudit appends an audit record, fire-and-forget.
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
