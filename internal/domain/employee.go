package domain

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a firm staff member and the employee-side copies of their task
// assignments. Loaded, mutated, and saved as one document, like Client.
type Employee struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// AssignedClients mirrors Client.EmployeeAssignments entry for entry.
	AssignedClients []*Assignment `json:"assignedClients,omitempty"`
}

// FindActiveAssignment returns the non-removed assignment for
// (clientID, year, month, task), or nil.
func (e *Employee) FindActiveAssignment(clientID uuid.UUID, year, month int, task TaskKind) *Assignment {
	for _, a := range e.AssignedClients {
		if a.IsActive() && a.ClientID == clientID && a.Matches(year, month, task) {
			return a
		}
	}
	return nil
}

// ActiveAssignmentsForPeriod returns every non-removed assignment the employee
// holds for (year, month), across all clients.
func (e *Employee) ActiveAssignmentsForPeriod(year, month int) []*Assignment {
	var out []*Assignment
	for _, a := range e.AssignedClients {
		if a.IsActive() && a.Year == year && a.Month == month {
			out = append(out, a)
		}
	}
	return out
}
