package assignment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
	"github.com/firmdesk/firmdesk-backend/pkg/ctxutil"
)

// AssignmentPair is the mirrored result of a successful Assign: the client-side
// copy and the employee-side copy share the same ID and state.
type AssignmentPair struct {
	Client   *domain.Assignment
	Employee *domain.Assignment
}

// Assign creates a mirrored assignment pair for (client, employee, period,
// task). The client document is persisted first, then the employee document;
// when the second write fails the just-appended client-side record is removed
// again by a compensating write and the failure surfaces as
// *domain.PartialFailureError carrying the rollback outcome.
//
// Not blindly retryable: after an ambiguous partial failure the caller must
// re-check state before assigning again.
func (s *Service) Assign(ctx context.Context, input AssignInput) (_ *AssignmentPair, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("assignment", "assign", err, start) }()

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

	record := client.Month(input.Year, input.Month)
	if record == nil || !record.HasFiles() {
		return nil, fmt.Errorf("no documents for period %d-%02d: %w",
			input.Year, input.Month, domain.ErrPrecondition)
	}

	if existing := client.FindActiveAssignment(input.Year, input.Month, input.Task); existing != nil {
		return nil, fmt.Errorf("task %s already assigned for %d-%02d: %w",
			input.Task, input.Year, input.Month, domain.ErrConflict)
	}
	if active := client.ActiveAssignments(input.Year, input.Month); len(active) >= maxActivePerPeriod {
		return nil, fmt.Errorf("period %d-%02d already has %d active assignments: %w",
			input.Year, input.Month, len(active), domain.ErrCapacity)
	}

	employee, err := s.employees.Get(ctx, input.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("load employee: %w", err)
	}
	if !employee.Active {
		return nil, fmt.Errorf("employee %s is inactive: %w", employee.ID, domain.ErrPrecondition)
	}
	// Duplicate check mirrored from the employee side. Catches a leftover
	// one-sided record from an earlier partial failure before it is doubled.
	if existing := employee.FindActiveAssignment(input.ClientID, input.Year, input.Month, input.Task); existing != nil {
		return nil, fmt.Errorf("employee already holds task %s for client %s in %d-%02d: %w",
			input.Task, input.ClientID, input.Year, input.Month, domain.ErrConflict)
	}

	now := time.Now().UTC()
	clientCopy := domain.NewAssignment(client.ID, employee.ID, input.Year, input.Month, input.Task, actor, now)
	employeeCopy := clientCopy.Clone()

	client.EmployeeAssignments = append(client.EmployeeAssignments, clientCopy)
	if err := s.clients.Save(ctx, client); err != nil {
		return nil, fmt.Errorf("save client: %w", err)
	}

	employee.AssignedClients = append(employee.AssignedClients, employeeCopy)
	if err := s.employees.Save(ctx, employee); err != nil {
		return nil, s.rollbackAssign(ctx, client, clientCopy, err)
	}

	s.logAudit(ctx, domain.AuditRecord{
		Actor:      actor,
		EntityType: domain.EntityTypeAssignment,
		EntityID:   &clientCopy.ID,
		Action:     domain.AuditActionAssign,
		Details: map[string]any{
			"client_id":   client.ID.String(),
			"employee_id": employee.ID.String(),
			"year":        input.Year,
			"month":       input.Month,
			"task":        input.Task.String(),
		},
	})

	s.notify(ctx, domain.NotificationEvent{
		Kind:       domain.NotificationTaskAssigned,
		ClientID:   client.ID,
		EmployeeID: employee.ID,
		Year:       input.Year,
		Month:      input.Month,
		Task:       input.Task,
		Actor:      actor,
		OccurredAt: now,
	})

	s.log.InfoContext(ctx, "task assigned",
		slog.String("assignment_id", clientCopy.ID.String()),
		slog.String("client_id", client.ID.String()),
		slog.String("employee_id", employee.ID.String()),
		slog.Int("year", input.Year),
		slog.Int("month", input.Month),
		slog.String("task", input.Task.String()),
	)

	return &AssignmentPair{Client: clientCopy, Employee: employeeCopy}, nil
}

// rollbackAssign compensates for a failed employee-side write by cutting the
// just-appended record out of the client document and persisting it again.
// The appended record has not been observed by anyone yet, so a hard cut is
// safe here where every other removal path tombstones.
func (s *Service) rollbackAssign(ctx context.Context, client *domain.Client, appended *domain.Assignment, cause error) error {
	for i, a := range client.EmployeeAssignments {
		if a.ID == appended.ID {
			client.EmployeeAssignments = append(
				client.EmployeeAssignments[:i],
				client.EmployeeAssignments[i+1:]...,
			)
			break
		}
	}

	pf := &domain.PartialFailureError{Op: "assign", Cause: cause}
	if rbErr := s.clients.Save(ctx, client); rbErr != nil {
		pf.RollbackErr = rbErr
		obs.RollbackOutcome("failed")
		s.log.ErrorContext(ctx, "assign rollback failed, client holds a one-sided record",
			slog.String("assignment_id", appended.ID.String()),
			slog.String("client_id", client.ID.String()),
			slog.Any("error", rbErr),
		)
		return pf
	}

	pf.RollbackComplete = true
	obs.RollbackOutcome("complete")
	s.log.WarnContext(ctx, "assign rolled back after employee save failure",
		slog.String("assignment_id", appended.ID.String()),
		slog.String("client_id", client.ID.String()),
		slog.Any("error", cause),
	)
	return pf
}
