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

// MarkAccountingDone transitions the active assignment for (client, employee,
// period, task) from accountingDone=false to true on both documents. The
// transition is terminal for removal purposes: a completed assignment can no
// longer be removed.
func (s *Service) MarkAccountingDone(ctx context.Context, input MarkDoneInput) (err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("assignment", "mark_accounting_done", err, start) }()

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
	if err := clientSide.MarkDone(actor, now); err != nil {
		return err
	}
	if err := employeeSide.MarkDone(actor, now); err != nil {
		s.restoreUndone(clientSide)
		return err
	}

	if err := s.clients.Save(ctx, client); err != nil {
		s.restoreUndone(clientSide)
		s.restoreUndone(employeeSide)
		return fmt.Errorf("save client: %w", err)
	}
	if err := s.employees.Save(ctx, employee); err != nil {
		return s.rollbackMarkDone(ctx, client, clientSide, employeeSide, err)
	}

	s.logAudit(ctx, domain.AuditRecord{
		Actor:      actor,
		EntityType: domain.EntityTypeAssignment,
		EntityID:   &clientSide.ID,
		Action:     domain.AuditActionAccountingDone,
		Details: map[string]any{
			"client_id":   client.ID.String(),
			"employee_id": employee.ID.String(),
			"year":        input.Year,
			"month":       input.Month,
			"task":        input.Task.String(),
		},
	})

	s.log.InfoContext(ctx, "accounting marked done",
		slog.String("assignment_id", clientSide.ID.String()),
		slog.String("client_id", client.ID.String()),
		slog.String("employee_id", employee.ID.String()),
		slog.String("task", input.Task.String()),
	)

	return nil
}

// restoreUndone undoes an in-memory MarkDone that was never persisted.
func (s *Service) restoreUndone(a *domain.Assignment) {
	a.AccountingDone = false
	a.AccountingDoneBy = nil
	a.AccountingDoneAt = nil
}

func (s *Service) rollbackMarkDone(ctx context.Context, client *domain.Client, clientSide, employeeSide *domain.Assignment, cause error) error {
	s.restoreUndone(clientSide)
	s.restoreUndone(employeeSide)

	pf := &domain.PartialFailureError{Op: "mark accounting done", Cause: cause}
	if rbErr := s.clients.Save(ctx, client); rbErr != nil {
		pf.RollbackErr = rbErr
		obs.RollbackOutcome("failed")
		s.log.ErrorContext(ctx, "mark-done rollback failed, mirrors disagree on completion",
			slog.String("assignment_id", clientSide.ID.String()),
			slog.String("client_id", client.ID.String()),
			slog.Any("error", rbErr),
		)
		return pf
	}

	pf.RollbackComplete = true
	obs.RollbackOutcome("complete")
	s.log.WarnContext(ctx, "mark-done rolled back after employee save failure",
		slog.String("assignment_id", clientSide.ID.String()),
		slog.String("client_id", client.ID.String()),
		slog.Any("error", cause),
	)
	return pf
}
