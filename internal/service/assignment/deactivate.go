package assignment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/firmdesk/firmdesk-backend/internal/domain"
	"github.com/firmdesk/firmdesk-backend/internal/obs"
	"github.com/firmdesk/firmdesk-backend/pkg/ctxutil"
)

// DeactivateInput identifies the employee to take out of rotation.
type DeactivateInput struct {
	EmployeeID uuid.UUID
	Reason     string
}

func (i DeactivateInput) Validate() error {
	if i.EmployeeID == uuid.Nil {
		return domain.NewValidationError("employee_id", "required")
	}
	return nil
}

// DeactivateResult reports which current-period assignments the deactivation
// removed and which clients could not be updated.
type DeactivateResult struct {
	Removed       []*domain.Assignment
	FailedClients []uuid.UUID
}

// DeactivateEmployee removes every current-period assignment the employee
// holds, client by client, then marks the employee inactive. A persistence
// failure against one client is logged and skipped, never fatal: the employee
// goes inactive regardless, and the skipped clients are reported for operator
// followup. Past and future periods keep their assignments untouched.
func (s *Service) DeactivateEmployee(ctx context.Context, input DeactivateInput) (_ *DeactivateResult, err error) {
	start := time.Now()
	defer func() { obs.ObserveOperation("assignment", "deactivate_employee", err, start) }()

	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	employee, err := s.employees.Get(ctx, input.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("load employee: %w", err)
	}

	now := time.Now().UTC()
	year, month := now.Year(), int(now.Month())
	reason := input.Reason
	if reason == "" {
		reason = "employee deactivated"
	}

	result := &DeactivateResult{}
	for _, employeeSide := range employee.ActiveAssignmentsForPeriod(year, month) {
		client, err := s.clients.Get(ctx, employeeSide.ClientID)
		if err != nil {
			result.FailedClients = append(result.FailedClients, employeeSide.ClientID)
			s.log.ErrorContext(ctx, "deactivation skipped a client",
				slog.String("client_id", employeeSide.ClientID.String()),
				slog.String("employee_id", employee.ID.String()),
				slog.Any("error", err),
			)
			continue
		}

		clientSide := client.FindActiveAssignment(employeeSide.Year, employeeSide.Month, employeeSide.Task)
		if clientSide == nil || clientSide.EmployeeID != employee.ID {
			// One-sided record from an earlier partial failure. Tombstone the
			// employee copy anyway so the deactivated employee ends up with no
			// active work; the discrepancy stays visible in the audit trail.
			s.log.WarnContext(ctx, "deactivation found a one-sided assignment",
				slog.String("assignment_id", employeeSide.ID.String()),
				slog.String("client_id", employeeSide.ClientID.String()),
			)
			if err := employeeSide.SoftRemove(actor, now, reason); err == nil {
				result.Removed = append(result.Removed, employeeSide)
			}
			continue
		}

		if err := clientSide.SoftRemove(actor, now, reason); err != nil {
			// Completed tasks survive deactivation.
			continue
		}
		if err := s.clients.Save(ctx, client); err != nil {
			s.restoreActive(clientSide)
			result.FailedClients = append(result.FailedClients, client.ID)
			s.log.ErrorContext(ctx, "deactivation skipped a client",
				slog.String("client_id", client.ID.String()),
				slog.String("employee_id", employee.ID.String()),
				slog.Any("error", err),
			)
			continue
		}

		if err := employeeSide.SoftRemove(actor, now, reason); err != nil {
			// The client side is already tombstoned but the employee copy
			// refused (mirror disagreement from an earlier partial failure).
			result.FailedClients = append(result.FailedClients, client.ID)
			s.log.WarnContext(ctx, "deactivation left a diverged assignment",
				slog.String("assignment_id", employeeSide.ID.String()),
				slog.String("client_id", client.ID.String()),
				slog.Any("error", err),
			)
		} else {
			result.Removed = append(result.Removed, employeeSide)
		}

		s.notify(ctx, domain.NotificationEvent{
			Kind:       domain.NotificationTaskRemoved,
			ClientID:   client.ID,
			EmployeeID: employee.ID,
			Year:       employeeSide.Year,
			Month:      employeeSide.Month,
			Task:       employeeSide.Task,
			Actor:      actor,
			OccurredAt: now,
		})
	}

	// One write carries both the tombstones and the inactive flag.
	employee.Active = false
	employee.UpdatedAt = now
	if err := s.employees.Save(ctx, employee); err != nil {
		return nil, fmt.Errorf("save employee: %w", err)
	}

	s.logAudit(ctx, domain.AuditRecord{
		Actor:      actor,
		EntityType: domain.EntityTypeEmployee,
		EntityID:   &employee.ID,
		Action:     domain.AuditActionDeactivate,
		Details: map[string]any{
			"employee_id":    employee.ID.String(),
			"removed_tasks":  len(result.Removed),
			"failed_clients": len(result.FailedClients),
		},
	})

	s.log.InfoContext(ctx, "employee deactivated",
		slog.String("employee_id", employee.ID.String()),
		slog.Int("removed_tasks", len(result.Removed)),
		slog.Int("failed_clients", len(result.FailedClients)),
	)

	return result, nil
}
