package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"
	"trekdesk/infras/otel"
	"trekdesk/infras/postgres"
	"trekdesk/internal/domains/booking/model"
	"trekdesk/shared/constant"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/logger"
	gRepo "trekdesk/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// The sweep skips rows another sweep already holds so two runs never complete the same booking.
const queryLockSweepable = `
	SELECT b.*
	FROM bookings b
	INNER JOIN trek_batches tb ON tb.id = b.batch_id
	WHERE b.booking_status = 'confirmed' AND tb.end_date < $1
	ORDER BY b.id
	FOR UPDATE OF b SKIP LOCKED`

const queryCompleteByIDs = `
	UPDATE bookings
	SET booking_status = 'completed', completed_at = $2, updated_at = $2
	WHERE id = ANY($1) AND booking_status = 'confirmed'`

const queryCompleteByBatch = `
	UPDATE bookings
	SET booking_status = 'completed', completed_at = $2, updated_at = $2
	WHERE batch_id = $1 AND booking_status = 'confirmed'`

var sortByID = gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}

type Booking interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (int, error)
	GetParticipants(ctx context.Context, bookingIDs []int64) ([]model.Participant, error)
	GetAddons(ctx context.Context, bookingIDs []int64) ([]model.Addon, error)
	LockSweepableTx(ctx context.Context, tx *sqlx.Tx, before string) ([]model.Booking, error)
	CompleteTx(ctx context.Context, tx *sqlx.Tx, ids []int64, at time.Time) (int64, error)
	CompleteByBatchTx(ctx context.Context, tx *sqlx.Tx, batchID int64, at time.Time) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	participants gRepo.Repository[model.Participant]
	addons       gRepo.Repository[model.Addon]
	db           *postgres.Connection
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository:   gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		participants: gRepo.NewRepository[model.Participant](model.ParticipantEntityName, model.ParticipantTableName, model.FieldID, db, otel),
		addons:       gRepo.NewRepository[model.Addon](model.AddonEntityName, model.AddonTableName, model.FieldID, db, otel),
		db:           db,
		otel:         otel,
	}
}

func byBookings(table string, bookingIDs []int64) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingID, Operator: gDto.FilterOperatorIn, Value: bookingIDs, Table: table},
		},
	}
}

func (r *repositoryImpl) GetParticipants(ctx context.Context, bookingIDs []int64) ([]model.Participant, error) {
	if len(bookingIDs) == 0 {
		return []model.Participant{}, nil
	}

	return r.participants.GetAll(ctx, sortByID, byBookings(model.ParticipantTableName, bookingIDs)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAddons(ctx context.Context, bookingIDs []int64) ([]model.Addon, error) {
	if len(bookingIDs) == 0 {
		return []model.Addon{}, nil
	}

	return r.addons.GetAll(ctx, sortByID, byBookings(model.AddonTableName, bookingIDs)) //nolint:wrapcheck
}

// LockSweepableTx row-locks confirmed bookings whose batch ended before the given date.
func (r *repositoryImpl) LockSweepableTx(ctx context.Context, tx *sqlx.Tx, before string) (bookings []model.Booking, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.LockSweepableTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryLockSweepable)

	bookings = []model.Booking{}
	if err = tx.SelectContext(ctx, &bookings, queryLockSweepable, before); err != nil {
		logger.ErrorWithStack(err)

		return bookings, fmt.Errorf("failed to lock sweepable bookings: %w", err)
	}

	return bookings, nil
}

func (r *repositoryImpl) CompleteTx(ctx context.Context, tx *sqlx.Tx, ids []int64, at time.Time) (affected int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CompleteTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(ids) == 0 {
		return 0, nil
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCompleteByIDs)

	result, err := tx.ExecContext(ctx, queryCompleteByIDs, pq.Array(ids), at)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to complete bookings: %w", err)
	}

	return rowsAffected(result)
}

// CompleteByBatchTx moves every confirmed booking of a batch to completed.
func (r *repositoryImpl) CompleteByBatchTx(ctx context.Context, tx *sqlx.Tx, batchID int64, at time.Time) (affected int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.CompleteByBatchTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCompleteByBatch)

	result, err := tx.ExecContext(ctx, queryCompleteByBatch, batchID, at)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to complete bookings of batch: %w", err)
	}

	return rowsAffected(result)
}

func rowsAffected(result interface{ RowsAffected() (int64, error) }) (int64, error) {
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}
