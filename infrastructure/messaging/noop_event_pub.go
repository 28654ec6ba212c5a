package messaging

import (
	"context"

	"timeguard/domain/ports"
	"timeguard/pkg/logger"
)

// NoopEventPublisher ใช้เมื่อไม่ได้ตั้งค่า NATS; log event ไว้ที่ debug level
type NoopEventPublisher struct{}

func NewNoopEventPublisher() ports.EventPublisherPort {
	return &NoopEventPublisher{}
}

func (p *NoopEventPublisher) Publish(ctx context.Context, event *ports.DomainEvent) error {
	if event != nil {
		logger.DebugContext(ctx, "Event not published (NATS disabled)", "type", event.Type, "entity_id", event.EntityID)
	}
	return nil
}
