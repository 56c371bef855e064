package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trekdesk/config"
	"trekdesk/infras/otel"
	"trekdesk/infras/postgres"
	batchModel "trekdesk/internal/domains/batch/model"
	batchDto "trekdesk/internal/domains/batch/model/dto"
	batchRepo "trekdesk/internal/domains/batch/repository"
	bookingModel "trekdesk/internal/domains/booking/model"
	bookingRepo "trekdesk/internal/domains/booking/repository"
	"trekdesk/internal/domains/trek/model"
	"trekdesk/internal/domains/trek/model/dto"
	"trekdesk/internal/domains/trek/repository"
	"trekdesk/shared"
	"trekdesk/shared/cache"
	"trekdesk/shared/constant"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/failure"
	"trekdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errTrekNotFound      = "trek not found"
	errTrekExists        = "trek already exists"
	errCoverImageMissing = "cover image is required"

	cacheKeyList    = "list"
	cacheKeyDetail  = "detail"
	cacheKeySummary = "summary"
)

var SortableFields = []string{
	constant.FieldCreatedAt,
	model.FieldName,
	model.FieldLocation,
	model.FieldCategory,
	model.FieldDifficulty,
}

var batchesByStartDate = gDto.QueryParams{SortBy: batchModel.FieldStartDate, SortDir: gDto.SortDirAsc}

type Trek interface {
	Create(ctx context.Context, req dto.TrekRequest, media dto.MediaRefs) (dto.CreateTrekResponse, error)
	Update(ctx context.Context, id int64, req dto.TrekRequest, media dto.MediaRefs) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTreksResponse, error)
	Get(ctx context.Context, id int64) (dto.TrekDetailResponse, error)
	GetForUpdate(ctx context.Context, id int64) (dto.TrekForUpdateResponse, error)
	GetSummaries(ctx context.Context) (dto.GetSummariesResponse, error)
}

type serviceImpl struct {
	repo        repository.Trek
	batchRepo   batchRepo.Batch
	bookingRepo bookingRepo.Booking
	transactor  postgres.Transactor
	cache       cache.RedisCache
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Trek,
	batchRepo batchRepo.Batch,
	bookingRepo bookingRepo.Booking,
	transactor postgres.Transactor,
	cache cache.RedisCache,
	cfg *config.Config,
	otel otel.Otel,
) Trek {
	return &serviceImpl{
		repo:        repo,
		batchRepo:   batchRepo,
		bookingRepo: bookingRepo,
		transactor:  transactor,
		cache:       cache,
		cfg:         cfg,
		otel:        otel,
	}
}

func byNameAndLocation(name, location string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorEq, Value: name, Table: model.TableName},
			gDto.Filter{Field: model.FieldLocation, Operator: gDto.FilterOperatorEq, Value: location, Table: model.TableName},
		},
	}
}

// Create writes the whole aggregate in one transaction and returns the new trek id.
func (s *serviceImpl) Create(ctx context.Context, req dto.TrekRequest, media dto.MediaRefs) (res dto.CreateTrekResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trek.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return res, err
	}

	if media.CoverImage == "" {
		return res, failure.Validation(errCoverImageMissing) //nolint:wrapcheck
	}

	var trekID int64

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		exists, err := s.repo.ExistTx(ctx, tx, byNameAndLocation(req.Name, req.Location))
		if err != nil {
			return fmt.Errorf("failed to check trek uniqueness: %w", err)
		}

		if exists {
			return failure.Duplicate(errTrekExists) //nolint:wrapcheck
		}

		trekID, err = s.repo.InsertReturningTx(ctx, tx, req.ToModel(media.CoverImage))
		if err != nil {
			return fmt.Errorf("failed to insert trek: %w", err)
		}

		if err := s.repo.InsertListsTx(ctx, tx, trekID, req.ToLists()); err != nil {
			return fmt.Errorf("failed to insert trek lists: %w", err)
		}

		for i := range req.Batches {
			if err := s.insertBatch(ctx, tx, trekID, &req.Batches[i]); err != nil {
				return fmt.Errorf("failed to insert batch %d: %w", i+1, err)
			}
		}

		if err := s.repo.InsertImagesTx(ctx, tx, trekID, media.Gallery); err != nil {
			return fmt.Errorf("failed to insert gallery: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Str("location", req.Location).Msg("failed to create trek")

		return res, fmt.Errorf("failed to create trek: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixTreks)

	return dto.CreateTrekResponse{ID: trekID, Name: req.Name, Location: req.Location}, nil
}

func (s *serviceImpl) insertBatch(ctx context.Context, tx *sqlx.Tx, trekID int64, req *batchDto.BatchRequest) error {
	batchID, err := s.batchRepo.InsertReturningTx(ctx, tx, req.ToModel(trekID))
	if err != nil {
		return fmt.Errorf("failed to insert batch row: %w", err)
	}

	if err := s.batchRepo.InsertChildrenTx(ctx, tx, batchID, req.ToChildren()); err != nil {
		return fmt.Errorf("failed to insert batch children: %w", err)
	}

	return nil
}

// Update reconciles the stored aggregate with req in one transaction.
// Paired batches are updated in place, extra inputs are inserted and orphaned
// batches are deleted unless they hold bookings, in which case they are
// deactivated or, when configured, the update is rejected.
func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.TrekRequest, media dto.MediaRefs) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trek.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.Validate(); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		trek, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock trek: %w", err)
		}

		if trek.ID == 0 {
			return failure.NotFound(errTrekNotFound) //nolint:wrapcheck
		}

		existing, err := s.batchRepo.GetAllByTrekTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to get batches: %w", err)
		}

		plan, err := planBatches(existing, req.Batches)
		if err != nil {
			return err
		}

		if err := s.repo.UpdateTx(ctx, tx, req.ToUpdateFields(media), filter); err != nil {
			return fmt.Errorf("failed to update trek: %w", err)
		}

		if err := s.repo.ReplaceListsTx(ctx, tx, id, req.ToLists()); err != nil {
			return fmt.Errorf("failed to replace trek lists: %w", err)
		}

		if err := s.applyPlan(ctx, tx, id, plan); err != nil {
			return err
		}

		if err := s.repo.DeleteImagesTx(ctx, tx, id, req.DeletedImages); err != nil {
			return fmt.Errorf("failed to delete gallery images: %w", err)
		}

		if err := s.repo.InsertImagesTx(ctx, tx, id, media.Gallery); err != nil {
			return fmt.Errorf("failed to insert gallery images: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("trek_id", id).Msg("failed to update trek")

		return fmt.Errorf("failed to update trek: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixTreks)

	return nil
}

func (s *serviceImpl) applyPlan(ctx context.Context, tx *sqlx.Tx, trekID int64, plan batchPlan) error {
	for _, pair := range plan.pairs {
		batchFilter := shared.FilterByID(pair.existing.ID, batchModel.FieldID, batchModel.TableName)

		if err := s.batchRepo.UpdateTx(ctx, tx, pair.input.ToUpdateFields(pair.existing), batchFilter); err != nil {
			return fmt.Errorf("failed to update batch %d: %w", pair.existing.ID, err)
		}

		if err := s.batchRepo.ReplaceChildrenTx(ctx, tx, pair.existing.ID, pair.input.ToChildren()); err != nil {
			return fmt.Errorf("failed to replace children of batch %d: %w", pair.existing.ID, err)
		}
	}

	for i, input := range plan.inserts {
		if err := s.insertBatch(ctx, tx, trekID, input); err != nil {
			return fmt.Errorf("failed to insert new batch %d: %w", i+1, err)
		}
	}

	for _, orphan := range plan.orphans {
		if err := s.retire(ctx, tx, orphan); err != nil {
			return err
		}
	}

	return nil
}

// retire removes a batch that is no longer submitted. Batches with bookings survive as inactive.
func (s *serviceImpl) retire(ctx context.Context, tx *sqlx.Tx, batch batchModel.Batch) error {
	bookings, err := s.bookingRepo.CountTx(ctx, tx, shared.FilterByID(batch.ID, bookingModel.FieldBatchID, bookingModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to count bookings of batch %d: %w", batch.ID, err)
	}

	batchFilter := shared.FilterByID(batch.ID, batchModel.FieldID, batchModel.TableName)

	if bookings == 0 {
		if err := s.batchRepo.DeleteChildrenTx(ctx, tx, batch.ID); err != nil {
			return fmt.Errorf("failed to delete children of batch %d: %w", batch.ID, err)
		}

		if err := s.batchRepo.DeleteTx(ctx, tx, batchFilter); err != nil {
			return fmt.Errorf("failed to delete batch %d: %w", batch.ID, err)
		}

		return nil
	}

	if s.cfg.App.Trek.RejectProtectedBatches {
		return failure.ProtectedBatchConflict(fmt.Sprintf("batch %d has %d bookings and cannot be removed", batch.ID, bookings)) //nolint:wrapcheck
	}

	if batch.IsCompleted() || batch.Status == batchModel.StatusInactive {
		return nil
	}

	fields := map[string]any{
		batchModel.FieldStatus:  batchModel.StatusInactive,
		constant.FieldUpdatedAt: timezone.Now(),
	}

	if err := s.batchRepo.UpdateTx(ctx, tx, fields, batchFilter); err != nil {
		return fmt.Errorf("failed to deactivate batch %d: %w", batch.ID, err)
	}

	log.Info().Int64("batch_id", batch.ID).Int("bookings", bookings).Msg("kept booked batch as inactive")

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTreksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trek.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSort(SortableFields...)

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(constant.CachePrefixTreks, cacheKeyList), params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for treks")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count treks")

		return res, fmt.Errorf("failed to count treks: %w", err)
	}

	items, err := s.repo.GetList(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get treks")

		return res, fmt.Errorf("failed to get treks: %w", err)
	}

	res.FromModels(items, total, params.Limit)
	s.save(ctx, cacheKey, res)

	return res, nil
}

// Get returns the full nested trek. Batches are ordered by start date.
func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.TrekDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trek.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CachePrefixTreks, cacheKeyDetail, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for trek")

		return res, nil
	}

	res, err = s.load(ctx, id)
	if err != nil {
		return res, err
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

// GetForUpdate returns the stored aggregate in request shape, batch ids included.
func (s *serviceImpl) GetForUpdate(ctx context.Context, id int64) (res dto.TrekForUpdateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trek.GetForUpdate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	detail, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	return dto.TrekForUpdateResponse{
		ID:         detail.ID,
		CoverImage: detail.CoverImage,
		Images:     detail.Images,
		Payload:    detail.ToRequest(),
	}, nil
}

func (s *serviceImpl) load(ctx context.Context, id int64) (res dto.TrekDetailResponse, err error) {
	trek, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("trek_id", id).Msg("failed to get trek")

		return res, fmt.Errorf("failed to get trek: %w", err)
	}

	if trek.ID == 0 {
		return res, failure.NotFound(errTrekNotFound) //nolint:wrapcheck
	}

	lists, err := s.repo.GetLists(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("trek_id", id).Msg("failed to get trek lists")

		return res, fmt.Errorf("failed to get trek lists: %w", err)
	}

	images, err := s.repo.GetImages(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("trek_id", id).Msg("failed to get trek images")

		return res, fmt.Errorf("failed to get trek images: %w", err)
	}

	batches, err := s.batchRepo.GetAll(ctx, batchesByStartDate, shared.FilterByID(id, batchModel.FieldTrekID, batchModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("trek_id", id).Msg("failed to get trek batches")

		return res, fmt.Errorf("failed to get trek batches: %w", err)
	}

	batchIDs := make([]int64, len(batches))
	for i, batch := range batches {
		batchIDs[i] = batch.ID
	}

	children, err := s.batchRepo.GetChildren(ctx, batchIDs)
	if err != nil {
		log.Error().Err(err).Int64("trek_id", id).Msg("failed to get batch children")

		return res, fmt.Errorf("failed to get batch children: %w", err)
	}

	res.TrekResponse.FromModel(trek)
	res.Highlights = lists.Highlights
	res.ThingsToCarry = lists.ThingsToCarry
	res.ImportantNotes = lists.ImportantNotes

	res.Images = make([]string, len(images))
	for i, image := range images {
		res.Images[i] = image.ImageURL
	}

	res.Batches = make([]batchDto.BatchResponse, len(batches))
	for i, batch := range batches {
		res.Batches[i].FromModel(batch)
		res.Batches[i].WithChildren(children[batch.ID])
	}

	return res, nil
}

func (s *serviceImpl) GetSummaries(ctx context.Context) (res dto.GetSummariesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trek.GetSummaries")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CachePrefixTreks, cacheKeySummary)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	summaries, err := s.repo.GetSummaries(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get trek summaries")

		return res, fmt.Errorf("failed to get trek summaries: %w", err)
	}

	res.FromModels(summaries)
	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save treks to cache")
	}
}
