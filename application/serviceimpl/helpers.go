package serviceimpl

import (
	"context"
	"time"

	"github.com/google/uuid"

	"timeguard/domain/ports"
	"timeguard/pkg/apperrors"
	"timeguard/pkg/logger"
)

// Clock แหล่งเวลาของ service; test ฉีดเวลาปลอมได้
type Clock func() time.Time

func systemClock() time.Time {
	return time.Now().UTC()
}

const defaultLockTTL = 5 * time.Second

// ═══════════════════════════════════════════════════════════════════════════════
// Locking
// ═══════════════════════════════════════════════════════════════════════════════

func taskLockKey(taskID uuid.UUID) string {
	return "task:" + taskID.String()
}

// pairLockKey key เดียวกันไม่ว่าใครเป็นคนส่ง
func pairLockKey(a, b uuid.UUID) string {
	x, y := a.String(), b.String()
	if x > y {
		x, y = y, x
	}
	return "friends:" + x + ":" + y
}

// withLock รัน fn ระหว่างถือ lock
// locker nil หรือ Redis ใช้ไม่ได้ จะรัน fn ต่อโดยไม่มี lock (ยังมี check ใน service และ unique index)
func withLock(ctx context.Context, locker ports.LockPort, key string, ttl time.Duration, fn func() error) error {
	if locker == nil {
		return fn()
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}

	token, err := locker.Acquire(ctx, key, ttl)
	if err != nil {
		logger.WarnContext(ctx, "Failed to acquire lock, continuing without it", "key", key, "error", err)
		return fn()
	}
	if token == "" {
		return apperrors.Conflict("Another request is modifying this resource, please retry")
	}
	defer func() {
		if err := locker.Release(context.WithoutCancel(ctx), key, token); err != nil {
			logger.WarnContext(ctx, "Failed to release lock", "key", key, "error", err)
		}
	}()

	return fn()
}

// ═══════════════════════════════════════════════════════════════════════════════
// Events
// ═══════════════════════════════════════════════════════════════════════════════

// publishEvent best-effort: error ถูก log แต่ไม่ทำให้ request fail
func publishEvent(ctx context.Context, publisher ports.EventPublisherPort, eventType string, actorID, entityID uuid.UUID, data map[string]any) {
	if publisher == nil {
		return
	}

	event := &ports.DomainEvent{
		Type:       eventType,
		ActorID:    actorID.String(),
		EntityID:   entityID.String(),
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
	if err := publisher.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish event", "type", eventType, "entity_id", entityID, "error", err)
	}
}
