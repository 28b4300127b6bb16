package directory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	clientrepo "github.com/firmdesk/firmdesk-backend/internal/adapter/postgres/client"
	employeerepo "github.com/firmdesk/firmdesk-backend/internal/adapter/postgres/employee"
	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
	"github.com/firmdesk/firmdesk-backend/pkg/ctxutil"
)

// GetClient loads one full client document.
func (s *Service) GetClient(ctx context.Context, id uuid.UUID) (_ *domain.Client, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("directory", "get_client", err, start) }()

	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("client_id", "required")
	}
	return s.clients.Get(ctx, id)
}

// GetEmployee loads one full employee document.
func (s *Service) GetEmployee(ctx context.Context, id uuid.UUID) (_ *domain.Employee, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("directory", "get_employee", err, start) }()

	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if id == uuid.Nil {
		return nil, domain.NewValidationError("employee_id", "required")
	}
	return s.employees.Get(ctx, id)
}

// ListClients returns directory rows ordered by name. Staff only.
func (s *Service) ListClients(ctx context.Context, input ListClientsInput) (_ []*domain.Client, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("directory", "list_clients", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok || !actor.Kind.IsStaff() {
		return nil, domain.ErrUnauthorized
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	clients, err := s.clients.List(ctx, clientrepo.ListFilter{
		Query:  input.Query,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

// ListEmployees returns directory rows ordered by name. Staff only.
func (s *Service) ListEmployees(ctx context.Context, input ListEmployeesInput) (_ []*domain.Employee, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("directory", "list_employees", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok || !actor.Kind.IsStaff() {
		return nil, domain.ErrUnauthorized
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	employees, err := s.employees.List(ctx, employeerepo.ListFilter{
		Query:      input.Query,
		OnlyActive: input.OnlyActive,
		Limit:      limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}
