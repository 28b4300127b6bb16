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

// Remove tombstones the active assignment for (client, employee, period, task)
// on both documents. Both copies must be present: a one-sided record signals an
// earlier partial failure and surfaces as ErrInconsistency for an operator to
// reconcile, never an automatic repair. A completed task cannot be removed.
func (s *Service) Remove(ctx context.Context, input RemoveInput) (err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("assignment", "remove", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}
	if err := s.checkYear(input.Year); err != nil {
		return err
	}

	client, err := s.clients.Get(ctx, input.ClientID)
	if err != nil {
		return fmt.Errorf("load client: %w", err)
	}
	employee, err := s.employees.Get(ctx, input.EmployeeID)
	if err != nil {
		return fmt.Errorf("load employee: %w", err)
	}

	clientSide := client.FindActiveAssignment(input.Year, input.Month, input.Task)
	employeeSide := employee.FindActiveAssignment(input.ClientID, input.Year, input.Month, input.Task)
	if clientSide != nil && clientSide.EmployeeID != input.EmployeeID {
		clientSide = nil
	}

	switch {
	case clientSide == nil && employeeSide == nil:
		return fmt.Errorf("assignment %s for %d-%02d: %w",
			input.Task, input.Year, input.Month, domain.ErrNotFound)
	case clientSide == nil || employeeSide == nil:
		return fmt.Errorf("assignment %s for %d-%02d present on one side only: %w",
			input.Task, input.Year, input.Month, domain.ErrInconsistency)
	}

	now := time.Now().UTC()
	if err := clientSide.SoftRemove(actor, now, input.Reason); err != nil {
		return err
	}
	if err := employeeSide.SoftRemove(actor, now, input.Reason); err != nil {
		// Mirrors disagreed on state; undo the client-side tombstone so both
		// stay as they were.
		s.restoreActive(clientSide)
		return err
	}

	if err := s.clients.Save(ctx, client); err != nil {
		s.restoreActive(clientSide)
		s.restoreActive(employeeSide)
		return fmt.Errorf("save client: %w", err)
	}
	if err := s.employees.Save(ctx, employee); err != nil {
		return s.rollbackRemove(ctx, client, clientSide, employeeSide, err)
	}

	s.logAudit(ctx, domain.AuditRecord{
		Actor:      actor,
		EntityType: domain.EntityTypeAssignment,
		EntityID:   &clientSide.ID,
		Action:     domain.AuditActionRemoveAssignment,
		Details: map[string]any{
			"client_id":   client.ID.String(),
			"employee_id": employee.ID.String(),
			"year":        input.Year,
			"month":       input.Month,
			"task":        input.Task.String(),
			"reason":      input.Reason,
		},
	})

	s.notify(ctx, domain.NotificationEvent{
		Kind:       domain.NotificationTaskRemoved,
		ClientID:   client.ID,
		EmployeeID: employee.ID,
		Year:       input.Year,
		Month:      input.Month,
		Task:       input.Task,
		Actor:      actor,
		OccurredAt: now,
	})

	s.log.InfoContext(ctx, "assignment removed",
		slog.String("assignment_id", clientSide.ID.String()),
		slog.String("client_id", client.ID.String()),
		slog.String("employee_id", employee.ID.String()),
		slog.String("task", input.Task.String()),
	)

	return nil
}

// restoreActive undoes an in-memory SoftRemove that was never persisted.
func (s *Service) restoreActive(a *domain.Assignment) {
	a.Removed = false
	a.RemovedBy = nil
	a.RemovedAt = nil
	a.RemovalReason = ""
}

// rollbackRemove compensates for a failed employee-side write by restoring the
// client-side record to active and persisting the client again.
func (s *Service) rollbackRemove(ctx context.Context, client *domain.Client, clientSide, employeeSide *domain.Assignment, cause error) error {
	s.restoreActive(clientSide)
	s.restoreActive(employeeSide)

	pf := &domain.PartialFailureError{Op: "remove", Cause: cause}
	if rbErr := s.clients.Save(ctx, client); rbErr != nil {
		pf.RollbackErr = rbErr
		obs.RollbackOutcome("failed")
		s.log.ErrorContext(ctx, "remove rollback failed, mirrors disagree on removal",
			slog.String("assignment_id", clientSide.ID.String()),
			slog.String("client_id", client.ID.String()),
			slog.Any("error", rbErr),
		)
		return pf
	}

	pf.RollbackComplete = true
	obs.RollbackOutcome("complete")
	s.log.WarnContext(ctx, "remove rolled back after employee save failure",
		slog.String("assignment_id", clientSide.ID.String()),
		slog.String("client_id", client.ID.String()),
		slog.Any("error", cause),
	)
	return pf
}
