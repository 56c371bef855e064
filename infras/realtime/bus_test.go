package realtime_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"
	"trekdesk/config"
	"trekdesk/infras/realtime"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBus(t *testing.T) *realtime.Bus {
	t.Helper()

	server := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Realtime.ChannelPrefix = "trekdesk:realtime"

	return realtime.NewBus(client, cfg)
}

func TestBusForwardsToHubRoom(t *testing.T) {
	bus := newBus(t)
	hub := realtime.NewHub(4)
	client := hub.Join("admin-room")
	defer hub.Leave(client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, bus.StartForwarder(ctx, realtime.ForwardTo(hub)))

	envelope, err := realtime.NewEnvelope("admin-room", realtime.EventBookingCompleted, map[string]any{"booking_id": 12})
	require.NoError(t, err)
	require.NoError(t, bus.Publish(ctx, envelope))

	select {
	case raw := <-client.Send:
		var got realtime.Envelope
		require.NoError(t, json.Unmarshal(raw, &got))
		assert.Equal(t, realtime.EventBookingCompleted, got.Event)
		assert.JSONEq(t, `{"booking_id":12}`, string(got.Payload))
	case <-time.After(2 * time.Second):
		t.Fatal("expected forwarded envelope")
	}
}

func TestBusRequiresCallback(t *testing.T) {
	bus := newBus(t)

	assert.Error(t, bus.StartForwarder(context.Background(), nil))
}

func TestBusForwardingFollowsForwarderLifetime(t *testing.T) {
	bus := newBus(t)
	assert.False(t, bus.Forwarding())

	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, bus.StartForwarder(ctx, realtime.ForwardTo(realtime.NewHub(1))))
	assert.True(t, bus.Forwarding())

	cancel()

	assert.Eventually(t, func() bool { return !bus.Forwarding() }, 2*time.Second, 20*time.Millisecond)
}

func TestBusWithoutClient(t *testing.T) {
	var bus *realtime.Bus

	assert.ErrorIs(t, bus.StartForwarder(context.Background(), realtime.ForwardTo(realtime.NewHub(1))), realtime.ErrBusNotInitialized)
	assert.False(t, bus.Forwarding())
}
