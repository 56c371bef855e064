package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trekdesk/config"
	"trekdesk/infras/otel"
	"trekdesk/infras/postgres"
	"trekdesk/infras/realtime"
	"trekdesk/internal/domains/batch/model"
	"trekdesk/internal/domains/batch/model/dto"
	"trekdesk/internal/domains/batch/repository"
	bookingRepo "trekdesk/internal/domains/booking/repository"
	"trekdesk/shared"
	"trekdesk/shared/cache"
	"trekdesk/shared/constant"
	"trekdesk/shared/failure"
	"trekdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errBatchNotFound         = "batch not found"
	errBatchAlreadyCompleted = "batch is already completed"
	errBatchNotEnded         = "batch can only be completed after its end date has passed"
)

type Batch interface {
	Stop(ctx context.Context, id int64) (dto.BatchViewResponse, error)
	Resume(ctx context.Context, id int64) (dto.BatchViewResponse, error)
	Complete(ctx context.Context, id int64) (dto.BatchCompletionResponse, error)
	GetByTrek(ctx context.Context, trekID int64) (dto.GetBatchesResponse, error)
}

type serviceImpl struct {
	repo        repository.Batch
	bookingRepo bookingRepo.Booking
	transactor  postgres.Transactor
	notifier    realtime.Notifier
	cache       cache.RedisCache
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Batch,
	bookingRepo bookingRepo.Booking,
	transactor postgres.Transactor,
	notifier realtime.Notifier,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Batch {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		transactor:  transactor,
		notifier:    notifier,
		cache:       cache,
		cfg:         cfg,
		otel:        otel,
	}
}

// Stop closes a batch for new bookings.
func (s *serviceImpl) Stop(ctx context.Context, id int64) (res dto.BatchViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".batch.Stop")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.setStatus(ctx, id, model.StatusInactive)
}

// Resume reopens a stopped batch.
func (s *serviceImpl) Resume(ctx context.Context, id int64) (res dto.BatchViewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".batch.Resume")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.setStatus(ctx, id, model.StatusActive)
}

func (s *serviceImpl) lock(ctx context.Context, tx *sqlx.Tx, id int64) (model.Batch, error) {
	batch, err := s.repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return batch, fmt.Errorf("failed to lock batch: %w", err)
	}

	if batch.ID == 0 {
		return batch, failure.NotFound(errBatchNotFound) //nolint:wrapcheck
	}

	if batch.IsCompleted() {
		return batch, failure.StateConflict(errBatchAlreadyCompleted) //nolint:wrapcheck
	}

	return batch, nil
}

func (s *serviceImpl) setStatus(ctx context.Context, id int64, status string) (res dto.BatchViewResponse, err error) {
	var view model.View

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := s.lock(ctx, tx, id); err != nil {
			return err
		}

		fields := map[string]any{
			model.FieldStatus:       status,
			constant.FieldUpdatedAt: timezone.Now(),
		}

		if err := s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update batch status: %w", err)
		}

		var err error

		view, err = s.repo.GetViewTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to load batch view: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("batch_id", id).Str("status", status).Msg("failed to change batch status")

		return res, fmt.Errorf("failed to change batch status: %w", err)
	}

	res.FromModel(view)

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixTreks)

	s.notifier.Notify(ctx, s.cfg.Realtime.AdminRoom, realtime.EventBatchStatusChanged, dto.BatchStatusChangedEvent{
		BatchID:  view.ID,
		TrekID:   view.TrekID,
		TrekName: view.TrekName,
		Status:   view.Status,
	})

	return res, nil
}

// Complete closes a batch whose end date has passed and completes its confirmed bookings.
func (s *serviceImpl) Complete(ctx context.Context, id int64) (res dto.BatchCompletionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".batch.Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		view      model.View
		completed int64
	)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		batch, err := s.lock(ctx, tx, id)
		if err != nil {
			return err
		}

		today := timezone.Today().Format(constant.DateOnlyFormat)
		if batch.EndDate.Format(constant.DateOnlyFormat) >= today {
			return failure.StateConflict(errBatchNotEnded) //nolint:wrapcheck
		}

		now := timezone.Now()
		fields := map[string]any{
			model.FieldStatus:       model.StatusCompleted,
			constant.FieldUpdatedAt: now,
		}

		if err = s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to update batch status: %w", err)
		}

		completed, err = s.bookingRepo.CompleteByBatchTx(ctx, tx, id, now)
		if err != nil {
			return fmt.Errorf("failed to complete bookings: %w", err)
		}

		view, err = s.repo.GetViewTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to load batch view: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("batch_id", id).Msg("failed to complete batch")

		return res, fmt.Errorf("failed to complete batch: %w", err)
	}

	res.Batch.FromModel(view)
	res.CompletedBookings = completed
	res.Stats.FromModel(view.Stats)

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixTreks)
	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixAnalytics)

	s.notifier.Notify(ctx, s.cfg.Realtime.AdminRoom, realtime.EventBatchCompleted, dto.BatchCompletedEvent{
		BatchID:           view.ID,
		TrekID:            view.TrekID,
		TrekName:          view.TrekName,
		CompletedBookings: completed,
	})

	log.Info().Int64("batch_id", id).Int64("completed_bookings", completed).Msg("batch completed")

	return res, nil
}

func (s *serviceImpl) GetByTrek(ctx context.Context, trekID int64) (res dto.GetBatchesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".batch.GetByTrek")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	views, err := s.repo.GetByTrek(ctx, trekID)
	if err != nil {
		log.Error().Err(err).Int64("trek_id", trekID).Msg("failed to get batches of trek")

		return res, fmt.Errorf("failed to get batches of trek: %w", err)
	}

	res.FromModels(views)

	return res, nil
}
