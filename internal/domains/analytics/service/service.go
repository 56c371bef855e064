package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trekdesk/config"
	"trekdesk/infras/otel"
	"trekdesk/internal/domains/analytics/model/dto"
	"trekdesk/internal/domains/analytics/repository"
	"trekdesk/shared"
	"trekdesk/shared/cache"
	"trekdesk/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRevenue   = "revenue"
	cacheKeyDashboard = "dashboard"

	recentBookingsLimit = 5
)

type Analytics interface {
	Revenue(ctx context.Context) (dto.RevenueResponse, error)
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	repo  repository.Analytics
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Analytics, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Analytics {
	return &serviceImpl{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) Revenue(ctx context.Context) (res dto.RevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".analytics.Revenue")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CachePrefixAnalytics, cacheKeyRevenue)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for revenue")

		return res, nil
	}

	totals, err := s.repo.GetRevenueTotals(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue totals")

		return res, fmt.Errorf("failed to get revenue totals: %w", err)
	}

	months, err := s.repo.GetMonthlyRevenue(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get monthly revenue")

		return res, fmt.Errorf("failed to get monthly revenue: %w", err)
	}

	treks, err := s.repo.GetTrekRevenue(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get trek revenue")

		return res, fmt.Errorf("failed to get trek revenue: %w", err)
	}

	res.FromModels(totals, months, treks)
	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".analytics.Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CachePrefixAnalytics, cacheKeyDashboard)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for dashboard")

		return res, nil
	}

	counts, err := s.repo.GetDashboardCounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get dashboard counts")

		return res, fmt.Errorf("failed to get dashboard counts: %w", err)
	}

	bookings, err := s.repo.GetRecentBookings(ctx, recentBookingsLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res.FromModels(counts, bookings)
	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save analytics to cache")
	}
}
