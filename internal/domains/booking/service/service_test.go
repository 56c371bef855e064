package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"trekdesk/config"
	otelMocks "trekdesk/infras/otel/mocks"
	"trekdesk/infras/postgres"
	pgMocks "trekdesk/infras/postgres/mocks"
	"trekdesk/infras/realtime"
	realtimeMocks "trekdesk/infras/realtime/mocks"
	"trekdesk/internal/domains/booking/mocks"
	"trekdesk/internal/domains/booking/model"
	"trekdesk/internal/domains/booking/service"
	cacheMocks "trekdesk/shared/cache/mocks"
	gDto "trekdesk/shared/dto"
)

type fixture struct {
	repo       *mocks.MockBooking
	transactor *pgMocks.MockTransactor
	cache      *cacheMocks.MockRedisCache
	notifier   *realtimeMocks.Recorder
	svc        service.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Realtime.AdminRoom = "admin-room"

	f := &fixture{
		repo:       mocks.NewMockBooking(ctrl),
		transactor: pgMocks.NewMockTransactor(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
		notifier:   realtimeMocks.NewRecorder(),
	}

	f.svc = service.New(f.repo, f.transactor, f.notifier, f.cache, cfg, otelMocks.NewOtel())

	f.transactor.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn postgres.TxFunc) error {
			return fn(ctx, nil)
		}).
		AnyTimes()

	return f
}

func TestBookingService_SweepCompleted(t *testing.T) {
	t.Run("completes ended bookings and notifies each", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().LockSweepableTx(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{
			{ID: 4, BookingReference: "TRK-0004", CustomerName: "Asha", TrekName: "Valley Trail", BookingStatus: model.StatusConfirmed},
			{ID: 9, BookingReference: "TRK-0009", CustomerName: "Ravi", TrekName: "Valley Trail", BookingStatus: model.StatusConfirmed},
		}, nil)
		f.repo.EXPECT().
			CompleteTx(gomock.Any(), gomock.Any(), []int64{4, 9}, gomock.Any()).
			Return(int64(2), nil)
		f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.SweepCompleted(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(2), res.Completed)
		require.Len(t, res.Bookings, 2)
		assert.Equal(t, "TRK-0009", res.Bookings[1].BookingReference)

		events := f.notifier.Events(realtime.EventBookingCompleted)
		require.Len(t, events, 2)
		assert.Equal(t, "admin-room", events[0].Topic)
	})

	t.Run("second run completes nothing and stays silent", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().LockSweepableTx(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{}, nil)
		f.repo.EXPECT().CompleteTx(gomock.Any(), gomock.Any(), []int64{}, gomock.Any()).Return(int64(0), nil)

		res, err := f.svc.SweepCompleted(context.Background())

		require.NoError(t, err)
		assert.Zero(t, res.Completed)
		assert.Empty(t, res.Bookings)
		assert.Empty(t, f.notifier.Notifications())
	})

	t.Run("failed update publishes nothing", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().LockSweepableTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{{ID: 4, BookingStatus: model.StatusConfirmed}}, nil)
		f.repo.EXPECT().CompleteTx(gomock.Any(), gomock.Any(), []int64{4}, gomock.Any()).
			Return(int64(0), errors.New("deadlock detected"))

		_, err := f.svc.SweepCompleted(context.Background())

		require.Error(t, err)
		assert.Empty(t, f.notifier.Notifications())
	})

	t.Run("rollback after the update publishes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockBooking(ctrl)
		transactor := pgMocks.NewMockTransactor(ctrl)
		notifier := realtimeMocks.NewRecorder()

		cfg := &config.Config{}
		svc := service.New(repo, transactor, notifier, cacheMocks.NewMockRedisCache(ctrl), cfg, otelMocks.NewOtel())

		transactor.EXPECT().
			WithinTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn postgres.TxFunc) error {
				if err := fn(ctx, (*sqlx.Tx)(nil)); err != nil {
					return err
				}

				return errors.New("commit failed")
			})

		repo.EXPECT().LockSweepableTx(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Booking{{ID: 4, BookingStatus: model.StatusConfirmed}}, nil)
		repo.EXPECT().CompleteTx(gomock.Any(), gomock.Any(), []int64{4}, gomock.Any()).Return(int64(1), nil)

		_, err := svc.SweepCompleted(context.Background())

		require.Error(t, err)
		assert.Empty(t, notifier.Notifications())
	})
}

func TestBookingService_GetByBatch(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{
		{ID: 1, CustomerName: "Asha"},
		{ID: 2, CustomerName: "Ravi"},
	}, nil)
	f.repo.EXPECT().GetParticipants(gomock.Any(), []int64{1, 2}).Return([]model.Participant{
		{BookingID: 1, Name: "Asha", IsPrimary: true},
		{BookingID: 1, Name: "Meera"},
	}, nil)
	f.repo.EXPECT().GetAddons(gomock.Any(), []int64{1, 2}).Return([]model.Addon{
		{BookingID: 2, AddonName: "Sleeping bag", Quantity: 1, UnitPrice: 300, TotalPrice: 300},
	}, nil)

	res, err := f.svc.GetByBatch(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, res.Bookings, 2)
	assert.Len(t, res.Bookings[0].ParticipantList, 2)
	assert.Empty(t, res.Bookings[0].Addons)
	assert.Empty(t, res.Bookings[1].ParticipantList)
	assert.Equal(t, "Sleeping bag", res.Bookings[1].Addons[0].AddonName)
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)

	params := gDto.QueryParams{Page: 1, Limit: 2, SortBy: "password", SortDir: gDto.SortDirAsc}

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(5, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			assert.NotEqual(t, "password", params.SortBy)

			return []model.Booking{{ID: 1}, {ID: 2}}, nil
		})

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 5, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Len(t, res.Bookings, 2)
}
