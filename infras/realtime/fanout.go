package realtime

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const publishTimeout = 3 * time.Second

type publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
}

type forwarder interface {
	Forwarding() bool
}

// Fanout is the Notifier used by the services. It publishes on the bus and,
// when configured, mirrors to the stream. If the bus is unavailable, or this
// replica has no forwarder subscribed, the event still reaches this replica's
// clients through the local hub.
type Fanout struct {
	bus    publisher
	stream publisher
	hub    *Hub
}

func NewFanout(bus *Bus, stream *Stream, hub *Hub) *Fanout {
	fanout := &Fanout{hub: hub}

	if bus != nil {
		fanout.bus = bus
	}

	if stream != nil {
		fanout.stream = stream
	}

	return fanout
}

func (f *Fanout) Notify(ctx context.Context, topic, event string, payload any) {
	ctx = context.WithoutCancel(ctx)

	envelope, err := NewEnvelope(topic, event, payload)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Str("event", event).Msg("failed to build realtime envelope")

		return
	}

	f.publishBus(ctx, envelope)
	f.publishStream(ctx, envelope)
}

func (f *Fanout) publishBus(ctx context.Context, envelope Envelope) {
	if f.bus != nil {
		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		err := f.bus.Publish(ctx, envelope)
		cancel()

		switch {
		case err != nil:
			log.Error().Err(err).Str("topic", envelope.Topic).Str("event", envelope.Event).Msg("failed to publish realtime event, delivering locally")
		case f.forwarded():
			return
		default:
			log.Debug().Str("event", envelope.Event).Msg("no realtime forwarder running, delivering locally")
		}
	}

	if f.hub == nil {
		return
	}

	raw, err := marshalEnvelope(envelope)
	if err != nil {
		log.Error().Err(err).Str("event", envelope.Event).Msg("failed to marshal realtime envelope")

		return
	}

	f.hub.Broadcast(envelope.Topic, raw)
}

// forwarded reports whether the bus hands published events back to this replica.
func (f *Fanout) forwarded() bool {
	fw, ok := f.bus.(forwarder)

	return !ok || fw.Forwarding()
}

func (f *Fanout) publishStream(ctx context.Context, envelope Envelope) {
	if f.stream == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := f.stream.Publish(ctx, envelope); err != nil {
		log.Error().Err(err).Str("topic", envelope.Topic).Str("event", envelope.Event).Msg("failed to stream realtime event")
	}
}
