package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trekdesk/infras/otel/mocks"
	"trekdesk/infras/postgres"
	"trekdesk/internal/domains/trek/model"
	"trekdesk/internal/domains/trek/repository"
)

func newRepository(t *testing.T) (repository.Trek, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { _ = sqlxDB.Close() })

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), sqlxDB, mock
}

func TestReplaceListsTx(t *testing.T) {
	t.Run("clears every list and writes only the non-empty ones", func(t *testing.T) {
		repo, db, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM trek_highlights`).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM trek_things_to_carry`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM trek_important_notes`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`INSERT INTO trek_highlights`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO trek_important_notes`).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		tx, err := db.Beginx()
		require.NoError(t, err)

		err = repo.ReplaceListsTx(context.Background(), tx, 7, model.Lists{
			Highlights:     []string{"Sunrise at the pass"},
			ImportantNotes: []string{"Carry ID", "No plastic"},
		})
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stops at the first failing delete", func(t *testing.T) {
		repo, db, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM trek_highlights`).WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		tx, err := db.Beginx()
		require.NoError(t, err)

		err = repo.ReplaceListsTx(context.Background(), tx, 7, model.Lists{Highlights: []string{"x"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to delete highlights")
		require.NoError(t, tx.Rollback())

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteImagesTx(t *testing.T) {
	t.Run("no urls is a no-op", func(t *testing.T) {
		repo, db, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectCommit()

		tx, err := db.Beginx()
		require.NoError(t, err)

		require.NoError(t, repo.DeleteImagesTx(context.Background(), tx, 7, nil))
		require.NoError(t, tx.Commit())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deletes only this trek's images", func(t *testing.T) {
		repo, db, mock := newRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM trek_images\s+WHERE .*trek_id.*image_url`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		tx, err := db.Beginx()
		require.NoError(t, err)

		require.NoError(t, repo.DeleteImagesTx(context.Background(), tx, 7, []string{"https://cdn.example.com/treks/a.jpg"}))
		require.NoError(t, tx.Commit())

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetSummaries(t *testing.T) {
	t.Run("maps aggregate columns", func(t *testing.T) {
		repo, _, mock := newRepository(t)

		mock.ExpectQuery(`FROM treks t`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "location", "total_batches", "active_batches", "total_bookings"}).
				AddRow(7, "Valley Trail", "Manali", 3, 2, 5))

		summaries, err := repo.GetSummaries(context.Background())
		require.NoError(t, err)
		require.Len(t, summaries, 1)

		assert.Equal(t, "Valley Trail", summaries[0].Name)
		assert.Equal(t, 2, summaries[0].ActiveBatches)
		assert.Equal(t, 5, summaries[0].TotalBookings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query failure is wrapped", func(t *testing.T) {
		repo, _, mock := newRepository(t)

		mock.ExpectQuery(`FROM treks t`).WillReturnError(errors.New("timeout"))

		summaries, err := repo.GetSummaries(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get trek summaries")
		assert.Empty(t, summaries)
	})
}
