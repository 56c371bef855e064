package di

import (
	"trekdesk/config"
	"trekdesk/infras/realtime"
	"trekdesk/permissions"
	"trekdesk/transport/http"
	"trekdesk/transport/worker"
)

func provideHub(cfg *config.Config) *realtime.Hub {
	return realtime.NewHub(cfg.Realtime.ClientBuffer)
}

func providePermissions() *permissions.PermissionData {
	return permissions.Get()
}

func provideBackground(w *worker.Worker) http.Background {
	return w
}
