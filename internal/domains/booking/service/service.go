package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trekdesk/config"
	"trekdesk/infras/otel"
	"trekdesk/infras/postgres"
	"trekdesk/infras/realtime"
	"trekdesk/internal/domains/booking/model"
	"trekdesk/internal/domains/booking/model/dto"
	"trekdesk/internal/domains/booking/repository"
	"trekdesk/shared"
	"trekdesk/shared/cache"
	"trekdesk/shared/constant"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var SortableFields = []string{
	constant.FieldCreatedAt,
	model.FieldCustomerName,
	model.FieldBookingStatus,
	model.FieldPaymentStatus,
	"start_date",
	"total_amount",
}

type Booking interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetByBatch(ctx context.Context, batchID int64) (dto.GetBatchBookingsResponse, error)
	SweepCompleted(ctx context.Context) (dto.SweepResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	transactor postgres.Transactor
	notifier   realtime.Notifier
	cache      cache.RedisCache
	cfg        *config.Config
	otel       otel.Otel
}

func New(repo repository.Booking, transactor postgres.Transactor, notifier realtime.Notifier, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		notifier:   notifier,
		cache:      cache,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSort(SortableFields...)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) GetByBatch(ctx context.Context, batchID int64) (res dto.GetBatchBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByBatch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	bookings, err := s.repo.GetAll(ctx, params, shared.FilterByID(batchID, model.FieldBatchID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("batch_id", batchID).Msg("failed to get bookings of batch")

		return res, fmt.Errorf("failed to get bookings of batch: %w", err)
	}

	ids := make([]int64, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.ID
	}

	participants, err := s.repo.GetParticipants(ctx, ids)
	if err != nil {
		log.Error().Err(err).Int64("batch_id", batchID).Msg("failed to get participants")

		return res, fmt.Errorf("failed to get participants: %w", err)
	}

	addons, err := s.repo.GetAddons(ctx, ids)
	if err != nil {
		log.Error().Err(err).Int64("batch_id", batchID).Msg("failed to get add-ons")

		return res, fmt.Errorf("failed to get add-ons: %w", err)
	}

	res.FromModels(bookings, participants, addons)

	return res, nil
}

// SweepCompleted completes every confirmed booking whose batch has ended and
// announces each one after the transaction commits. A second run with nothing
// eligible completes and announces nothing.
func (s *serviceImpl) SweepCompleted(ctx context.Context) (res dto.SweepResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.SweepCompleted")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	completedAt := timezone.Now()
	today := timezone.Today().Format(constant.DateOnlyFormat)

	var (
		swept    []model.Booking
		affected int64
	)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		bookings, err := s.repo.LockSweepableTx(ctx, tx, today)
		if err != nil {
			return fmt.Errorf("failed to find completable bookings: %w", err)
		}

		ids := make([]int64, len(bookings))
		for i, booking := range bookings {
			ids[i] = booking.ID
		}

		count, err := s.repo.CompleteTx(ctx, tx, ids, completedAt)
		if err != nil {
			return fmt.Errorf("failed to mark bookings completed: %w", err)
		}

		swept, affected = bookings, count

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to sweep completed bookings")

		return res, fmt.Errorf("failed to sweep completed bookings: %w", err)
	}

	res.Completed = affected
	res.Bookings = make([]dto.BookingCompletedEvent, len(swept))

	for i, booking := range swept {
		res.Bookings[i].FromModel(booking, completedAt)
		s.notifier.Notify(ctx, s.cfg.Realtime.AdminRoom, realtime.EventBookingCompleted, res.Bookings[i])
	}

	if affected > 0 {
		shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixAnalytics)
	}

	log.Info().Int64("completed", affected).Msg("booking sweep finished")

	return res, nil
}
