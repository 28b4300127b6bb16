// Package assignment keeps the mirrored task-assignment records on client and
// employee documents consistent: paired writes with compensating rollback,
// capacity and duplicate guards, and best-effort outbound notifications.
package assignment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/firmdesk/firmdesk-backend/internal/config"
	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
)

// maxActivePerPeriod caps non-removed assignments per (client, year, month).
// One per task kind; four task kinds.
const maxActivePerPeriod = 4

type clientRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	Save(ctx context.Context, c *domain.Client) error
}

type employeeRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	Save(ctx context.Context, e *domain.Employee) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type notifier interface {
	Notify(ctx context.Context, event domain.NotificationEvent) error
}

// Service provides assignment consistency operations.
type Service struct {
	clients   clientRepo
	employees employeeRepo
	audit     auditLogger
	notifier  notifier
	limits    config.PortalConfig
	log       *slog.Logger
}

// NewService creates a new Assignment service.
func NewService(
	log *slog.Logger,
	clients clientRepo,
	employees employeeRepo,
	audit auditLogger,
	notifier notifier,
	limits config.PortalConfig,
) *Service {
	return &Service{
		clients:   clients,
		employees: employees,
		audit:     audit,
		notifier:  notifier,
		limits:    limits,
		log:       log.With("service", "assignment"),
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

// notify publishes an outbound event, best-effort. A delivery failure is
// logged and counted but never fails the operation that produced the event.
func (s *Service) notify(ctx context.Context, event domain.NotificationEvent) {
	if err := s.notifier.Notify(ctx, event); err != nil {
		obs.NotifyFailure()
		s.log.ErrorContext(ctx, "notification publish failed",
			slog.String("kind", string(event.Kind)),
			slog.String("client_id", event.ClientID.String()),
			slog.String("employee_id", event.EmployeeID.String()),
			slog.Any("error", err),
		)
	}
}
