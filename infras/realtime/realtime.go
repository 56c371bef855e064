// Package realtime delivers domain events to connected admin dashboards.
//
// Events are published on a Redis channel per topic so that every API replica
// forwards them to its own websocket clients. When Kafka is enabled the same
// events are mirrored to a topic for downstream consumers.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"trekdesk/shared/timezone"
)

const (
	EventBatchStatusChanged = "batch-status-changed"
	EventBatchCompleted     = "batch-completed"
	EventBookingCompleted   = "booking-completed"
)

// Notifier is fire-and-forget. Implementations log delivery errors instead of returning them.
type Notifier interface {
	Notify(ctx context.Context, topic, event string, payload any)
}

type Envelope struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	SentAt  time.Time       `json:"sent_at"`
}

func NewEnvelope(topic, event string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to marshal %s payload: %w", event, err)
	}

	return Envelope{
		Topic:   topic,
		Event:   event,
		Payload: raw,
		SentAt:  timezone.Now(),
	}, nil
}

func marshalEnvelope(envelope Envelope) ([]byte, error) {
	raw, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}

	return raw, nil
}
