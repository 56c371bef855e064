package handler

import (
	"net/http"
	"sync"
	"trekdesk/config"
	"trekdesk/di"
	"trekdesk/shared/logger"
)

var (
	once    sync.Once
	handler http.Handler
)

// Handler is the serverless entry point. Background workers do not run here,
// the booking sweep is reached through POST /v1/bookings/sweep instead.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		handler = di.InitializeService().Handler()
	})

	r.RequestURI = r.URL.String()

	handler.ServeHTTP(w, r)
}
