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
	"trekdesk/internal/domains/batch/model"
	"trekdesk/internal/domains/batch/repository"
)

var viewRowColumns = []string{
	"id", "trek_id", "start_date", "end_date", "available_slots", "status", "trek_name",
	"total_bookings", "total_participants", "confirmed_participants", "pending_participants", "completed_participants",
}

func newRepository(t *testing.T) (repository.Batch, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { _ = sqlxDB.Close() })

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), sqlxDB, mock
}

func TestGetViewTx(t *testing.T) {
	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	t.Run("aggregates participants by status", func(t *testing.T) {
		repo, db, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`WHERE tb.id = \$1 GROUP BY tb.id, t.name`).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows(viewRowColumns).
				AddRow(3, 7, start, start.AddDate(0, 0, 4), 20, model.StatusActive, "Valley Trail", 4, 11, 6, 3, 2))
		mock.ExpectCommit()

		tx, err := db.Beginx()
		require.NoError(t, err)

		view, err := repo.GetViewTx(context.Background(), tx, 3)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		assert.Equal(t, int64(3), view.ID)
		assert.Equal(t, "Valley Trail", view.TrekName)
		assert.Equal(t, 9, view.BookedSlots())
		assert.Equal(t, 2, view.CompletedParticipants)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing batch yields the zero view", func(t *testing.T) {
		repo, db, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`WHERE tb.id = \$1`).
			WithArgs(int64(999999)).
			WillReturnRows(sqlmock.NewRows(viewRowColumns))
		mock.ExpectCommit()

		tx, err := db.Beginx()
		require.NoError(t, err)

		view, err := repo.GetViewTx(context.Background(), tx, 999999)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		assert.Zero(t, view.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetByTrek(t *testing.T) {
	repo, _, mock := newRepository(t)
	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`WHERE tb.trek_id = \$1 GROUP BY tb.id, t.name ORDER BY tb.start_date ASC`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(viewRowColumns).
			AddRow(1, 7, start, start.AddDate(0, 0, 3), 12, model.StatusActive, "Valley Trail", 0, 0, 0, 0, 0).
			AddRow(2, 7, start.AddDate(0, 1, 0), start.AddDate(0, 1, 3), 12, model.StatusInactive, "Valley Trail", 1, 2, 2, 0, 0))

	views, err := repo.GetByTrek(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, model.StatusInactive, views[1].Status)
	assert.Equal(t, 2, views[1].ConfirmedParticipants)
	assert.NoError(t, mock.ExpectationsWereMet())
}
