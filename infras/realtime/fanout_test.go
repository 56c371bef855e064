package realtime_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
	"trekdesk/config"
	"trekdesk/infras/kafka"
	"trekdesk/infras/kafka/mocks"
	"trekdesk/infras/realtime"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestFanoutFallsBackToLocalHub(t *testing.T) {
	server := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	server.Close()

	cfg := &config.Config{}
	cfg.Realtime.ChannelPrefix = "trekdesk:realtime"

	hub := realtime.NewHub(2)
	admin := hub.Join("admin-room")
	defer hub.Leave(admin)

	fanout := realtime.NewFanout(realtime.NewBus(client, cfg), nil, hub)
	fanout.Notify(context.Background(), "admin-room", realtime.EventBatchCompleted, map[string]int64{"batch_id": 4})

	require.Len(t, admin.Send, 1)

	var got realtime.Envelope
	require.NoError(t, json.Unmarshal(<-admin.Send, &got))
	assert.Equal(t, realtime.EventBatchCompleted, got.Event)
}

func TestFanoutDeliversLocallyWithoutForwarder(t *testing.T) {
	bus := newBus(t)

	hub := realtime.NewHub(2)
	admin := hub.Join("admin-room")
	defer hub.Leave(admin)

	fanout := realtime.NewFanout(bus, nil, hub)
	fanout.Notify(context.Background(), "admin-room", realtime.EventBookingCompleted, map[string]int64{"booking_id": 8})

	require.Len(t, admin.Send, 1)

	var got realtime.Envelope
	require.NoError(t, json.Unmarshal(<-admin.Send, &got))
	assert.Equal(t, realtime.EventBookingCompleted, got.Event)
}

func TestFanoutDeliversOnceWithForwarder(t *testing.T) {
	bus := newBus(t)

	hub := realtime.NewHub(4)
	admin := hub.Join("admin-room")
	defer hub.Leave(admin)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, bus.StartForwarder(ctx, realtime.ForwardTo(hub)))

	realtime.NewFanout(bus, nil, hub).Notify(ctx, "admin-room", realtime.EventBatchStatusChanged, map[string]int64{"batch_id": 2})

	select {
	case <-admin.Send:
	case <-time.After(2 * time.Second):
		t.Fatal("event was not forwarded")
	}

	select {
	case <-admin.Send:
		t.Fatal("event delivered twice")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestFanoutMirrorsToStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	kafkaClient := mocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.TopicEvents = "trekdesk.events"

	kafkaClient.EXPECT().
		SendMessages(gomock.Any(), "trekdesk.events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			require.Len(t, messages, 1)
			assert.Equal(t, "admin-room", messages[0].Key)
			assert.Equal(t, realtime.EventBookingCompleted, messages[0].Headers["event"])

			return errors.New("broker unavailable")
		})

	hub := realtime.NewHub(2)
	admin := hub.Join("admin-room")
	defer hub.Leave(admin)

	fanout := realtime.NewFanout(nil, realtime.NewStream(kafkaClient, cfg), hub)

	assert.NotPanics(t, func() {
		fanout.Notify(context.Background(), "admin-room", realtime.EventBookingCompleted, map[string]int64{"booking_id": 1})
	})
	assert.Len(t, admin.Send, 1)
}

func TestFanoutSkipsUnencodablePayload(t *testing.T) {
	hub := realtime.NewHub(2)
	admin := hub.Join("admin-room")
	defer hub.Leave(admin)

	realtime.NewFanout(nil, nil, hub).Notify(context.Background(), "admin-room", "x", make(chan int))

	assert.Empty(t, admin.Send)
}

func TestNewStreamDisabled(t *testing.T) {
	assert.Nil(t, realtime.NewStream(nil, &config.Config{}))
}
