package main

import (
	"trekdesk/config"
	"trekdesk/di"
	_ "trekdesk/docs"
	"trekdesk/helper"
	"trekdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init -g ./cmd/app/main.go -o ./docs --parseDependency --parseInternal -d ../../

// @title Trekdesk Admin API
// @version 1.0
// @description Admin backend for trek listings, batches, bookings and blog content.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
