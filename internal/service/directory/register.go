package directory

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

// RegisterClient creates a new client record with an empty document tree.
// Staff only.
func (s *Service) RegisterClient(ctx context.Context, input RegisterClientInput) (_ *domain.Client, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("directory", "register_client", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok || !actor.Kind.IsStaff() {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	client := &domain.Client{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(input.Name),
		ContactEmail: strings.TrimSpace(input.ContactEmail),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.clients.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	s.logAudit(ctx, domain.AuditRecord{
		Actor:      actor,
		EntityType: domain.EntityTypeClient,
		EntityID:   &client.ID,
		Action:     domain.AuditActionCreate,
		Details:    map[string]any{"name": client.Name},
	})

	s.log.InfoContext(ctx, "client registered",
		slog.String("client_id", client.ID.String()),
		slog.String("name", client.Name),
	)

	return client, nil
}

// RegisterEmployee creates a new active employee record. Staff only.
func (s *Service) RegisterEmployee(ctx context.Context, input RegisterEmployeeInput) (_ *domain.Employee, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("directory", "register_employee", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok || !actor.Kind.IsStaff() {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	employee := &domain.Employee{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}

	s.logAudit(ctx, domain.AuditRecord{
		Actor:      actor,
		EntityType: domain.EntityTypeEmployee,
		EntityID:   &employee.ID,
		Action:     domain.AuditActionCreate,
		Details:    map[string]any{"name": employee.Name},
	})

	s.log.InfoContext(ctx, "employee registered",
		slog.String("employee_id", employee.ID.String()),
		slog.String("name", employee.Name),
	)

	return employee, nil
}
