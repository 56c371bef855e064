package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"trekdesk/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var ErrBusNotInitialized = errors.New("realtime bus not initialized")

// Bus carries envelopes between replicas over Redis pub/sub.
type Bus struct {
	client     *goRedis.Client
	prefix     string
	forwarders atomic.Int32
}

func NewBus(client *goRedis.Client, config *config.Config) *Bus {
	return &Bus{
		client: client,
		prefix: strings.TrimSuffix(config.Realtime.ChannelPrefix, ":"),
	}
}

func (b *Bus) channel(topic string) string {
	return b.prefix + ":" + topic
}

func (b *Bus) Publish(ctx context.Context, envelope Envelope) error {
	if b == nil || b.client == nil {
		return ErrBusNotInitialized
	}

	raw, err := marshalEnvelope(envelope)
	if err != nil {
		return err
	}

	if err = b.client.Publish(ctx, b.channel(envelope.Topic), raw).Err(); err != nil {
		return fmt.Errorf("failed to publish %s: %w", envelope.Event, err)
	}

	return nil
}

// StartForwarder subscribes to every topic under the prefix and hands each
// decoded envelope with its raw bytes to onMsg until ctx is done.
func (b *Bus) StartForwarder(ctx context.Context, onMsg func(envelope Envelope, raw []byte)) error {
	if b == nil || b.client == nil {
		return ErrBusNotInitialized
	}

	if onMsg == nil {
		return errors.New("onMsg callback required")
	}

	sub := b.client.PSubscribe(ctx, b.channel("*"))

	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()

		return fmt.Errorf("redis psubscribe: %w", err)
	}

	b.forwarders.Add(1)

	go func() {
		defer b.forwarders.Add(-1)
		defer sub.Close()

		messages := sub.Channel()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok || msg == nil {
					return
				}

				var envelope Envelope
				if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
					log.Warn().Err(err).Str("channel", msg.Channel).Msg("bad realtime payload")

					continue
				}

				onMsg(envelope, []byte(msg.Payload))
			}
		}
	}()

	log.Info().Str("pattern", b.channel("*")).Msg("realtime forwarder started")

	return nil
}

// Forwarding reports whether a forwarder of this process is subscribed, so
// that a publish also reaches the local hub.
func (b *Bus) Forwarding() bool {
	return b != nil && b.forwarders.Load() > 0
}

// ForwardTo is the forwarder callback that delivers envelopes into hub rooms named by topic.
func ForwardTo(hub *Hub) func(envelope Envelope, raw []byte) {
	return func(envelope Envelope, raw []byte) {
		hub.Broadcast(envelope.Topic, raw)
	}
}
