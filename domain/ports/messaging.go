package ports

import (
	"context"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════════
// Domain Event Publisher Port - แจ้ง event ของ task/timer/friendship ออกไปภายนอก
// ═══════════════════════════════════════════════════════════════════════════════

const (
	EventTaskCreated      = "task.created"
	EventTaskUpdated      = "task.updated"
	EventTaskDeleted      = "task.deleted"
	EventTimerStarted     = "timer.started"
	EventTimerStopped     = "timer.stopped"
	EventTimeEntryCreated = "time_entry.created"
	EventTimeEntryUpdated = "time_entry.updated"
	EventTimeEntryDeleted = "time_entry.deleted"
	EventFriendRequested  = "friend.requested"
	EventFriendAccepted   = "friend.accepted"
	EventFriendRejected   = "friend.rejected"
	EventFriendCancelled  = "friend.cancelled"
	EventFriendRemoved    = "friend.removed"
	EventSnapshotCreated  = "report.snapshot_created"
)

// DomainEvent - Plain struct (ไม่มี NATS dependency)
type DomainEvent struct {
	Type       string         `json:"type"`
	ActorID    string         `json:"actor_id"`
	EntityID   string         `json:"entity_id"`
	Data       map[string]any `json:"data,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// EventPublisherPort - Interface สำหรับ publish domain event
// การ publish เป็น best-effort: caller log error แต่ไม่ fail request
type EventPublisherPort interface {
	Publish(ctx context.Context, event *DomainEvent) error
}
