package realtime

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultClientBuffer = 64

type Client struct {
	ID    uuid.UUID
	Room  string
	Send  chan []byte
	close sync.Once
}

// Hub fans messages out to the clients of a room. It never blocks on a slow client.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]struct{}
	buffer int
}

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultClientBuffer
	}

	return &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		buffer: buffer,
	}
}

// Join registers a new client in room. Callers must Leave when the connection ends.
func (hub *Hub) Join(room string) *Client {
	room = strings.TrimSpace(room)

	client := &Client{
		ID:   uuid.New(),
		Room: room,
		Send: make(chan []byte, hub.buffer),
	}

	hub.mu.Lock()
	defer hub.mu.Unlock()

	clients, ok := hub.rooms[room]
	if !ok {
		clients = make(map[*Client]struct{})
		hub.rooms[room] = clients
	}

	clients[client] = struct{}{}

	log.Debug().Str("clientID", client.ID.String()).Str("room", room).Msg("realtime client joined")

	return client
}

func (hub *Hub) Leave(client *Client) {
	hub.mu.Lock()
	defer hub.mu.Unlock()

	if clients, ok := hub.rooms[client.Room]; ok {
		delete(clients, client)

		if len(clients) == 0 {
			delete(hub.rooms, client.Room)
		}
	}

	client.close.Do(func() { close(client.Send) })

	log.Debug().Str("clientID", client.ID.String()).Str("room", client.Room).Msg("realtime client left")
}

// Broadcast queues msg for every client in room and returns how many accepted it.
func (hub *Hub) Broadcast(room string, msg []byte) int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()

	delivered := 0

	for client := range hub.rooms[room] {
		select {
		case client.Send <- msg:
			delivered++
		default:
			log.Warn().Str("clientID", client.ID.String()).Str("room", room).Msg("dropping realtime message, outbound buffer full")
		}
	}

	return delivered
}

func (hub *Hub) Clients(room string) int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()

	return len(hub.rooms[room])
}
