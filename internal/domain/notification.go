package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind names an outbound notification event.
type NotificationKind string

const (
	NotificationTaskAssigned NotificationKind = "TASK_ASSIGNED"
	NotificationTaskRemoved  NotificationKind = "TASK_REMOVED"
)

// NotificationEvent is the payload handed to the outbound notifier after a
// successful assign/remove. Delivery is best-effort.
type NotificationEvent struct {
	Kind       NotificationKind `json:"kind"`
	ClientID   uuid.UUID        `json:"clientId"`
	EmployeeID uuid.UUID        `json:"employeeId"`
	Year       int              `json:"year"`
	Month      int              `json:"month"`
	Task       TaskKind         `json:"task"`
	Actor      Actor            `json:"actor"`
	OccurredAt time.Time        `json:"occurredAt"`
}
