package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Assignment is one staff task against a client-month. The same logical
// assignment (same ID) is stored twice: once under the owning client, once
// under the owning employee. Both copies must agree on task, period, and
// removal/completion state; the assignment service keeps them consistent.
type Assignment struct {
	ID         uuid.UUID `json:"id"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	Task       TaskKind  `json:"task"`
	ClientID   uuid.UUID `json:"clientId"`
	EmployeeID uuid.UUID `json:"employeeId"`
	AssignedBy Actor     `json:"assignedBy"`
	AssignedAt time.Time `json:"assignedAt"`

	AccountingDone   bool       `json:"accountingDone"`
	AccountingDoneBy *Actor     `json:"accountingDoneBy,omitempty"`
	AccountingDoneAt *time.Time `json:"accountingDoneAt,omitempty"`

	Removed       bool       `json:"isRemoved"`
	RemovedBy     *Actor     `json:"removedBy,omitempty"`
	RemovedAt     *time.Time `json:"removedAt,omitempty"`
	RemovalReason string     `json:"removalReason,omitempty"`
}

// NewAssignment builds one copy of a mirrored assignment pair. Both copies are
// created from the same call site and share the generated ID.
func NewAssignment(clientID, employeeID uuid.UUID, year, month int, task TaskKind, actor Actor, at time.Time) *Assignment {
	return &Assignment{
		ID:         uuid.New(),
		Year:       year,
		Month:      month,
		Task:       task,
		ClientID:   clientID,
		EmployeeID: employeeID,
		AssignedBy: actor,
		AssignedAt: at,
	}
}

// Clone returns a deep copy, used to build the employee-side mirror.
func (a *Assignment) Clone() *Assignment {
	cp := *a
	if a.AccountingDoneBy != nil {
		by := *a.AccountingDoneBy
		cp.AccountingDoneBy = &by
	}
	if a.AccountingDoneAt != nil {
		at := *a.AccountingDoneAt
		cp.AccountingDoneAt = &at
	}
	if a.RemovedBy != nil {
		by := *a.RemovedBy
		cp.RemovedBy = &by
	}
	if a.RemovedAt != nil {
		at := *a.RemovedAt
		cp.RemovedAt = &at
	}
	return &cp
}

// IsActive reports whether the assignment has not been soft-removed.
func (a *Assignment) IsActive() bool { return !a.Removed }

// Matches reports whether the assignment targets the given period and task.
func (a *Assignment) Matches(year, month int, task TaskKind) bool {
	return a.Year == year && a.Month == month && a.Task == task
}

// MarkDone transitions Active(accountingDone=false) → Active(true).
func (a *Assignment) MarkDone(actor Actor, at time.Time) error {
	if a.Removed {
		return fmt.Errorf("assignment %s is removed: %w", a.ID, ErrConflict)
	}
	if a.AccountingDone {
		return fmt.Errorf("assignment %s already done: %w", a.ID, ErrConflict)
	}
	a.AccountingDone = true
	a.AccountingDoneBy = &actor
	a.AccountingDoneAt = &at
	return nil
}

// SoftRemove tombstones the assignment. A completed assignment cannot be
// removed; an already-removed one stays removed.
func (a *Assignment) SoftRemove(actor Actor, at time.Time, reason string) error {
	if a.Removed {
		return fmt.Errorf("assignment %s already removed: %w", a.ID, ErrConflict)
	}
	if a.AccountingDone {
		return fmt.Errorf("assignment %s: cannot remove a completed task: %w", a.ID, ErrConflict)
	}
	a.Removed = true
	a.RemovedBy = &actor
	a.RemovedAt = &at
	a.RemovalReason = reason
	return nil
}
