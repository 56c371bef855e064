package realtime

import (
	"fmt"
	"net/http"
	"slices"
	"time"
	"trekdesk/config"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Websocket upgrades HTTP requests into hub clients. Clients only receive.
type Websocket struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewWebsocket(hub *Hub, config *config.Config) *Websocket {
	allowed := config.Realtime.AllowedOrigins

	return &Websocket{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")

				return len(allowed) == 0 || origin == "" || slices.Contains(allowed, origin)
			},
		},
	}
}

// Serve blocks until the connection closes.
func (ws *Websocket) Serve(w http.ResponseWriter, r *http.Request, room string) error {
	conn, err := ws.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("failed to upgrade websocket: %w", err)
	}

	client := ws.hub.Join(room)

	go writePump(conn, client)
	readPump(conn)

	ws.hub.Leave(client)

	return nil
}

func writePump(conn *websocket.Conn, client *Client) {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Debug().Err(err).Str("clientID", client.ID.String()).Msg("realtime write failed")

				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))

			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drains control frames so pongs and close frames are processed.
func readPump(conn *websocket.Conn) {
	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
