package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trekdesk/infras/otel/mocks"
	"trekdesk/infras/postgres"
	"trekdesk/internal/domains/booking/model"
	"trekdesk/internal/domains/booking/repository"
)

func newRepository(t *testing.T) (repository.Booking, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { _ = sqlxDB.Close() })

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), sqlxDB, mock
}

func TestLockSweepableTx(t *testing.T) {
	repo, db, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE OF b SKIP LOCKED`).
		WithArgs("2026-10-17").
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_reference", "customer_name", "booking_status"}).
			AddRow(4, "TRK-0004", "Asha", model.StatusConfirmed).
			AddRow(9, "TRK-0009", "Ravi", model.StatusConfirmed))
	mock.ExpectRollback()

	tx, err := db.Beginx()
	require.NoError(t, err)

	bookings, err := repo.LockSweepableTx(context.Background(), tx, "2026-10-17")
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	require.Len(t, bookings, 2)
	assert.Equal(t, "TRK-0009", bookings[1].BookingReference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteTx(t *testing.T) {
	t.Run("updates only confirmed rows", func(t *testing.T) {
		repo, db, mock := newRepository(t)
		at := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE bookings .* WHERE id = ANY\(\$1\) AND booking_status = 'confirmed'`).
			WithArgs(sqlmock.AnyArg(), at).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		tx, err := db.Beginx()
		require.NoError(t, err)

		affected, err := repo.CompleteTx(context.Background(), tx, []int64{4, 9}, at)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		assert.Equal(t, int64(2), affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty id list issues no statement", func(t *testing.T) {
		repo, db, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectCommit()

		tx, err := db.Beginx()
		require.NoError(t, err)

		affected, err := repo.CompleteTx(context.Background(), tx, []int64{}, time.Now())
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		assert.Zero(t, affected)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCompleteByBatchTx(t *testing.T) {
	repo, db, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE bookings .* WHERE batch_id = \$1 AND booking_status = 'confirmed'`).
		WithArgs(int64(3), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	affected, err := repo.CompleteByBatchTx(context.Background(), tx, 3, time.Now())
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Zero(t, affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetParticipantsSkipsEmptyLookup(t *testing.T) {
	repo, _, mock := newRepository(t)

	participants, err := repo.GetParticipants(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, participants)
	assert.NoError(t, mock.ExpectationsWereMet())
}
