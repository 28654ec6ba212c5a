package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"timeguard/domain/ports"
	natspkg "timeguard/infrastructure/nats"
)

// NATSEventPublisher implements EventPublisherPort using JetStream
type NATSEventPublisher struct {
	publisher *natspkg.Publisher
}

// NewNATSEventPublisher สร้าง EventPublisherPort adapter สำหรับ NATS
func NewNATSEventPublisher(publisher *natspkg.Publisher) ports.EventPublisherPort {
	return &NATSEventPublisher{
		publisher: publisher,
	}
}

func (p *NATSEventPublisher) Publish(ctx context.Context, event *ports.DomainEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	if event.Type == "" {
		return fmt.Errorf("event type is required")
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return p.publisher.Publish(ctx, event.Type, data)
}
