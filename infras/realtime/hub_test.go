package realtime_test

import (
	"testing"
	"trekdesk/infras/realtime"

	"github.com/stretchr/testify/assert"
)

func TestHubBroadcastIsRoomScoped(t *testing.T) {
	hub := realtime.NewHub(4)

	admin := hub.Join("admin-room")
	other := hub.Join("ops-room")
	defer hub.Leave(admin)
	defer hub.Leave(other)

	delivered := hub.Broadcast("admin-room", []byte(`{"event":"booking-completed"}`))

	assert.Equal(t, 1, delivered)
	assert.Equal(t, `{"event":"booking-completed"}`, string(<-admin.Send))
	assert.Empty(t, other.Send)
}

func TestHubDropsForSlowClient(t *testing.T) {
	hub := realtime.NewHub(1)

	slow := hub.Join("admin-room")
	defer hub.Leave(slow)

	assert.Equal(t, 1, hub.Broadcast("admin-room", []byte("first")))
	assert.Equal(t, 0, hub.Broadcast("admin-room", []byte("second")))
	assert.Equal(t, "first", string(<-slow.Send))
}

func TestHubLeaveClosesAndRemoves(t *testing.T) {
	hub := realtime.NewHub(1)

	client := hub.Join("admin-room")
	assert.Equal(t, 1, hub.Clients("admin-room"))

	hub.Leave(client)
	hub.Leave(client)

	_, open := <-client.Send
	assert.False(t, open)
	assert.Equal(t, 0, hub.Clients("admin-room"))
	assert.Equal(t, 0, hub.Broadcast("admin-room", []byte("x")))
}
