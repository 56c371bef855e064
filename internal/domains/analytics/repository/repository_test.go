package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trekdesk/infras/otel/mocks"
	"trekdesk/infras/postgres"
	"trekdesk/internal/domains/analytics/repository"
)

func newRepository(t *testing.T) (repository.Analytics, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { _ = sqlxDB.Close() })

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), mock
}

func TestGetRevenueTotals(t *testing.T) {
	repo, mock := newRepository(t)

	mock.ExpectQuery(`AS average_booking_value`).
		WithArgs("paid", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"total_bookings", "total_revenue", "average_booking_value"}).
			AddRow(12, 54000.0, 6000.0))

	totals, err := repo.GetRevenueTotals(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, totals.TotalBookings)
	assert.InDelta(t, 54000.0, totals.TotalRevenue, 0.001)
	assert.InDelta(t, 6000.0, totals.AverageBookingValue, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMonthlyRevenue(t *testing.T) {
	t.Run("rows in month order", func(t *testing.T) {
		repo, mock := newRepository(t)

		jan := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`date_trunc\('month', created_at\)`).
			WillReturnRows(sqlmock.NewRows([]string{"month", "bookings", "amount"}).
				AddRow(jan, 3, 15000.0).
				AddRow(jan.AddDate(0, 1, 0), 4, 21000.0))

		months, err := repo.GetMonthlyRevenue(context.Background())
		require.NoError(t, err)
		require.Len(t, months, 2)

		assert.Equal(t, jan, months[0].Month)
		assert.Equal(t, 4, months[1].Bookings)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure returns an empty slice", func(t *testing.T) {
		repo, mock := newRepository(t)

		mock.ExpectQuery(`date_trunc`).WillReturnError(errors.New("canceling statement"))

		months, err := repo.GetMonthlyRevenue(context.Background())
		require.Error(t, err)
		assert.NotNil(t, months)
		assert.Empty(t, months)
	})
}

func TestGetRecentBookings(t *testing.T) {
	repo, mock := newRepository(t)

	created := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`ORDER BY created_at DESC, id DESC\s+LIMIT \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "customer_name", "customer_email", "customer_phone", "trek_name", "participants",
			"total_amount", "booking_status", "payment_status", "created_at",
		}).AddRow(9, "Asha", "asha@example.com", "+911234", "Valley Trail", 2, 9000.0, "confirmed", "paid", created))

	bookings, err := repo.GetRecentBookings(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, bookings, 1)

	assert.Equal(t, int64(9), bookings[0].ID)
	assert.Equal(t, "Valley Trail", bookings[0].TrekName)
	assert.NoError(t, mock.ExpectationsWereMet())
}
