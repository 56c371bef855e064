package realtime

import (
	"net/http"
	"trekdesk/config"
	"trekdesk/infras/realtime"
	"trekdesk/shared/constant"
	"trekdesk/shared/failure"
	"trekdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	websocket *realtime.Websocket
	config    *config.Config
}

func New(websocket *realtime.Websocket, config *config.Config) Handler {
	return Handler{
		websocket: websocket,
		config:    config,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/realtime", func(routerGroup chi.Router) {
		routerGroup.Get("/ws", handler.Subscribe)
	})
}

// Subscribe upgrades the connection and streams admin events to it.
// @Summary Subscribe to admin events
// @Description Websocket endpoint. Browsers may pass the token as the access_token query parameter.
// @Tags Realtime
// @Param room query string false "Room to join, defaults to the admin room"
// @Success 101
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/realtime/ws [get]
// @Security BearerAuth
func (handler *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	room := r.URL.Query().Get(constant.RequestParamRoom)
	if room == "" {
		room = handler.config.Realtime.AdminRoom
	}

	if room != handler.config.Realtime.AdminRoom {
		response.WithError(w, failure.Validation("unknown room: "+room))

		return
	}

	if err := handler.websocket.Serve(w, r, room); err != nil {
		log.Error().Err(err).Str("room", room).Msg("failed to serve websocket")
	}
}
