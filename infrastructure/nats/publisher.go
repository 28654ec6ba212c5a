package nats

import (
	"context"
	"fmt"

	"timeguard/pkg/logger"
)

// Publisher publishes raw payloads to the event stream
type Publisher struct {
	client *Client
}

// NewPublisher สร้าง Publisher ใหม่
func NewPublisher(client *Client) *Publisher {
	return &Publisher{
		client: client,
	}
}

// Publish ส่ง payload ไปยัง JetStream subject ของ event type
func (p *Publisher) Publish(ctx context.Context, eventType string, data []byte) error {
	subject := SubjectFor(eventType)

	ack, err := p.client.js.Publish(ctx, subject, data)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	logger.DebugContext(ctx, "Event published to JetStream",
		"subject", subject,
		"stream", ack.Stream,
		"sequence", ack.Sequence,
	)

	return nil
}
