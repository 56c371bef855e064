package realtime

import (
	"context"
	"fmt"
	"trekdesk/config"
	"trekdesk/infras/kafka"
)

// Stream mirrors envelopes to a Kafka topic keyed by realtime topic.
type Stream struct {
	client kafka.Client
	topic  string
}

// NewStream returns nil when Kafka is disabled so the fanout skips mirroring.
func NewStream(client kafka.Client, config *config.Config) *Stream {
	if !config.Kafka.Enable {
		return nil
	}

	return &Stream{
		client: client,
		topic:  config.Kafka.TopicEvents,
	}
}

func (s *Stream) Publish(ctx context.Context, envelope Envelope) error {
	err := s.client.SendMessages(ctx, s.topic, kafka.Message{
		Key:     envelope.Topic,
		Value:   envelope,
		Headers: map[string]string{"event": envelope.Event},
	})
	if err != nil {
		return fmt.Errorf("failed to stream %s: %w", envelope.Event, err)
	}

	return nil
}
