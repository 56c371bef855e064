//go:build wireinject
// +build wireinject

package di

import (
	"trekdesk/config"
	"trekdesk/infras/jwt"
	"trekdesk/infras/kafka"
	"trekdesk/infras/otel"
	"trekdesk/infras/postgres"
	"trekdesk/infras/realtime"
	"trekdesk/infras/redis"
	"trekdesk/infras/s3"
	"trekdesk/infras/scheduler"
	"trekdesk/internal/handlers/media"
	"trekdesk/shared/cache"
	"trekdesk/transport/http"
	"trekdesk/transport/http/middleware"
	"trekdesk/transport/http/router"
	"trekdesk/transport/worker"

	"github.com/google/wire"

	analyticsRepository "trekdesk/internal/domains/analytics/repository"
	analyticsService "trekdesk/internal/domains/analytics/service"
	authRepository "trekdesk/internal/domains/auth/repository"
	authService "trekdesk/internal/domains/auth/service"
	batchRepository "trekdesk/internal/domains/batch/repository"
	batchService "trekdesk/internal/domains/batch/service"
	bookingRepository "trekdesk/internal/domains/booking/repository"
	bookingService "trekdesk/internal/domains/booking/service"
	postRepository "trekdesk/internal/domains/post/repository"
	postService "trekdesk/internal/domains/post/service"
	trekRepository "trekdesk/internal/domains/trek/repository"
	trekService "trekdesk/internal/domains/trek/service"
	userRepository "trekdesk/internal/domains/user/repository"
	userService "trekdesk/internal/domains/user/service"

	analyticsHandler "trekdesk/internal/handlers/analytics"
	authHandler "trekdesk/internal/handlers/auth"
	batchHandler "trekdesk/internal/handlers/batch"
	bookingHandler "trekdesk/internal/handlers/booking"
	postHandler "trekdesk/internal/handlers/post"
	realtimeHandler "trekdesk/internal/handlers/realtime"
	trekHandler "trekdesk/internal/handlers/trek"
	userHandler "trekdesk/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	scheduler.New,
)

var notifications = wire.NewSet(
	provideHub,
	realtime.NewBus,
	realtime.NewStream,
	realtime.NewFanout,
	realtime.NewWebsocket,
	wire.Bind(new(realtime.Notifier), new(*realtime.Fanout)),
)

var middlewares = wire.NewSet(
	providePermissions,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	media.NewUploader,
)

var authDomain = wire.NewSet(
	authRepository.New,
	authService.New,
)

var trekDomain = wire.NewSet(
	trekRepository.New,
	trekService.New,
)

var batchDomain = wire.NewSet(
	batchRepository.New,
	batchService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var analyticsDomain = wire.NewSet(
	analyticsRepository.New,
	analyticsService.New,
)

var postDomain = wire.NewSet(
	postRepository.New,
	postService.New,
)

var domains = wire.NewSet(
	authDomain,
	trekDomain,
	batchDomain,
	bookingDomain,
	userDomain,
	analyticsDomain,
	postDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	trekHandler.New,
	batchHandler.New,
	bookingHandler.New,
	userHandler.New,
	analyticsHandler.New,
	postHandler.New,
	realtimeHandler.New,
	router.New,
)

var background = wire.NewSet(
	worker.New,
	provideBackground,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		notifications,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		background,
		http.New,
	)

	return &http.HTTP{}
}
