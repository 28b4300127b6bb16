// Package directory implements client and employee registration and the
// staff-facing directory listings.
package directory

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	clientrepo "github.com/firmdesk/firmdesk-backend/internal/adapter/postgres/client"
	employeerepo "github.com/firmdesk/firmdesk-backend/internal/adapter/postgres/employee"
	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
)

// defaultListLimit bounds unpaginated directory requests.
const defaultListLimit = 100

type clientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, f clientrepo.ListFilter) ([]*domain.Client, error)
}

type employeeRepo interface {
	Create(ctx context.Context, e *domain.Employee) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Employee, error)
	List(ctx context.Context, f employeerepo.ListFilter) ([]*domain.Employee, error)
}

type auditLog interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
	ListByActor(ctx context.Context, actorID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error)
}

// Service provides registration, directory, and audit history operations.
type Service struct {
	clients   clientRepo
	employees employeeRepo
	audit     auditLog
	log       *slog.Logger
}

// NewService creates a new Directory service.
func NewService(
	log *slog.Logger,
	clients clientRepo,
	employees employeeRepo,
	audit auditLog,
) *Service {
	return &Service{
		clients:   clients,
		employees: employees,
		audit:     audit,
		log:       log.With("service", "directory"),
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
