package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"trekdesk/config"
	otelMocks "trekdesk/infras/otel/mocks"
	"trekdesk/infras/postgres"
	pgMocks "trekdesk/infras/postgres/mocks"
	"trekdesk/infras/realtime"
	realtimeMocks "trekdesk/infras/realtime/mocks"
	batchMocks "trekdesk/internal/domains/batch/mocks"
	"trekdesk/internal/domains/batch/model"
	"trekdesk/internal/domains/batch/model/dto"
	"trekdesk/internal/domains/batch/service"
	bookingMocks "trekdesk/internal/domains/booking/mocks"
	cacheMocks "trekdesk/shared/cache/mocks"
	"trekdesk/shared/failure"
	"trekdesk/shared/timezone"
)

type fixture struct {
	repo        *batchMocks.MockBatch
	bookingRepo *bookingMocks.MockBooking
	transactor  *pgMocks.MockTransactor
	cache       *cacheMocks.MockRedisCache
	notifier    *realtimeMocks.Recorder
	svc         service.Batch
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Realtime.AdminRoom = "admin-room"

	f := &fixture{
		repo:        batchMocks.NewMockBatch(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		transactor:  pgMocks.NewMockTransactor(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		notifier:    realtimeMocks.NewRecorder(),
	}

	f.svc = service.New(f.repo, f.bookingRepo, f.transactor, f.notifier, f.cache, cfg, otelMocks.NewOtel())

	f.transactor.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn postgres.TxFunc) error {
			return fn(ctx, nil)
		}).
		AnyTimes()

	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func batchEnding(id int64, status string, end time.Time) model.Batch {
	return model.Batch{
		ID:             id,
		TrekID:         7,
		StartDate:      end.AddDate(0, 0, -5),
		EndDate:        end,
		AvailableSlots: 10,
		Status:         status,
	}
}

func viewOf(batch model.Batch, stats model.Stats) model.View {
	return model.View{Batch: batch, TrekName: "Valley Trail", Stats: stats}
}

func TestBatchService_Stop(t *testing.T) {
	future := timezone.Today().AddDate(0, 0, 10)

	tests := []struct {
		name       string
		setupMock  func(f *fixture)
		wantKind   failure.Kind
		wantStatus string
		wantEvents int
	}{
		{
			name: "stops an active batch",
			setupMock: func(f *fixture) {
				batch := batchEnding(1, model.StatusActive, future)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(batch, nil)
				f.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusInactive, fields[model.FieldStatus])

						return nil
					})

				batch.Status = model.StatusInactive
				f.repo.EXPECT().GetViewTx(gomock.Any(), gomock.Any(), int64(1)).
					Return(viewOf(batch, model.Stats{ConfirmedParticipants: 3, PendingParticipants: 2}), nil)
			},
			wantStatus: model.StatusInactive,
			wantEvents: 1,
		},
		{
			name: "missing batch is not found",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Batch{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "completed batch cannot be stopped",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(batchEnding(1, model.StatusCompleted, future), nil)
			},
			wantKind: failure.KindStateConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Stop(context.Background(), 1)

			if tt.wantKind != failure.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
				assert.Equal(t, "Valley Trail", res.TrekName)
				assert.Equal(t, 5, res.BookedSlots)
				assert.Equal(t, 5, res.RemainingSlots)
			}

			assert.Len(t, f.notifier.Events(realtime.EventBatchStatusChanged), tt.wantEvents)
		})
	}
}

func TestBatchService_Resume(t *testing.T) {
	f := newFixture(t)
	future := timezone.Today().AddDate(0, 0, 3)

	batch := batchEnding(2, model.StatusInactive, future)
	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(batch, nil)
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	batch.Status = model.StatusActive
	f.repo.EXPECT().GetViewTx(gomock.Any(), gomock.Any(), int64(2)).
		Return(viewOf(batch, model.Stats{ConfirmedParticipants: 12}), nil)

	res, err := f.svc.Resume(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, res.Status)
	assert.Equal(t, 0, res.RemainingSlots)

	events := f.notifier.Events(realtime.EventBatchStatusChanged)
	require.Len(t, events, 1)
	assert.Equal(t, "admin-room", events[0].Topic)
	assert.Equal(t, dto.BatchStatusChangedEvent{BatchID: 2, TrekID: 7, TrekName: "Valley Trail", Status: model.StatusActive}, events[0].Payload)
}

func TestBatchService_Complete(t *testing.T) {
	today := timezone.Today()

	tests := []struct {
		name          string
		setupMock     func(f *fixture)
		wantKind      failure.Kind
		wantErr       bool
		wantCompleted int64
	}{
		{
			name: "ended batch completes its confirmed bookings",
			setupMock: func(f *fixture) {
				batch := batchEnding(3, model.StatusActive, today.AddDate(0, 0, -1))
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(batch, nil)
				f.repo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusCompleted, fields[model.FieldStatus])

						return nil
					})
				f.bookingRepo.EXPECT().CompleteByBatchTx(gomock.Any(), gomock.Any(), int64(3), gomock.Any()).Return(int64(2), nil)

				batch.Status = model.StatusCompleted
				f.repo.EXPECT().GetViewTx(gomock.Any(), gomock.Any(), int64(3)).
					Return(viewOf(batch, model.Stats{TotalBookings: 3, TotalParticipants: 7, CompletedParticipants: 5, PendingParticipants: 2}), nil)
			},
			wantCompleted: 2,
		},
		{
			name: "batch ending today is rejected",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(batchEnding(3, model.StatusActive, today), nil)
			},
			wantKind: failure.KindStateConflict,
		},
		{
			name: "batch ending later is rejected",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(batchEnding(3, model.StatusInactive, today.AddDate(0, 1, 0)), nil)
			},
			wantKind: failure.KindStateConflict,
		},
		{
			name: "completed batch is rejected",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(batchEnding(3, model.StatusCompleted, today.AddDate(0, 0, -3)), nil)
			},
			wantKind: failure.KindStateConflict,
		},
		{
			name: "missing batch is not found",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Batch{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "booking update failure publishes nothing",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(batchEnding(3, model.StatusActive, today.AddDate(0, 0, -1)), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.bookingRepo.EXPECT().CompleteByBatchTx(gomock.Any(), gomock.Any(), int64(3), gomock.Any()).
					Return(int64(0), errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Complete(context.Background(), 3)

			switch {
			case tt.wantKind != failure.KindUnknown:
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))
				assert.Empty(t, f.notifier.Notifications())
			case tt.wantErr:
				require.Error(t, err)
				assert.Empty(t, f.notifier.Notifications())
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantCompleted, res.CompletedBookings)
				assert.Equal(t, model.StatusCompleted, res.Batch.Status)
				assert.Equal(t, 5, res.Stats.CompletedParticipants)
				assert.Equal(t, 3, res.Stats.TotalBookings)
				assert.Len(t, f.notifier.Events(realtime.EventBatchCompleted), 1)
			}
		})
	}
}

func TestBatchService_GetByTrek(t *testing.T) {
	f := newFixture(t)
	end := timezone.Today().AddDate(0, 0, 20)

	f.repo.EXPECT().GetByTrek(gomock.Any(), int64(7)).Return([]model.View{
		viewOf(batchEnding(1, model.StatusActive, end), model.Stats{TotalBookings: 2, TotalParticipants: 4, ConfirmedParticipants: 4}),
		viewOf(batchEnding(2, model.StatusInactive, end), model.Stats{}),
	}, nil)

	res, err := f.svc.GetByTrek(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, res.Batches, 2)
	assert.Equal(t, 4, res.Batches[0].Stats.ConfirmedParticipants)
	assert.Equal(t, 6, res.Batches[0].RemainingSlots)
	assert.Equal(t, 10, res.Batches[1].RemainingSlots)
}
