package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is one append-only audit log entry. Writing it is
// fire-and-forget for core operations: a failed append never fails the
// operation that produced it.
type AuditRecord struct {
	ID         uuid.UUID
	Actor      Actor
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Details    map[string]any
	CreatedAt  time.Time
}
