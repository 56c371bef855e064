package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "trekdesk/infras/otel/mocks"
	"trekdesk/internal/domains/user/mocks"
	"trekdesk/internal/domains/user/model"
	"trekdesk/internal/domains/user/service"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/failure"
)

func TestUserService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUser(ctrl)
	svc := service.New(repo, otelMocks.NewOtel())

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	repo.EXPECT().
		GetList(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.ListItem, error) {
			assert.Empty(t, params.SortBy)

			return []model.ListItem{
				{User: model.User{ID: 1, FullName: "Asha", IsActive: model.StateActive}, TotalBookings: 2, TotalSpent: 13500},
				{User: model.User{ID: 2, FullName: "Ravi", IsActive: model.StateInactive}},
				{User: model.User{ID: 3, FullName: "Meera", IsActive: 0}},
			}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2, SortBy: "password"}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	require.Len(t, res.Users, 3)
	assert.Equal(t, "active", res.Users[0].Status)
	assert.Equal(t, 2, res.Users[0].TotalBookings)
	assert.InDelta(t, 13500.0, res.Users[0].TotalSpent, 0.001)
	assert.Equal(t, "inactive", res.Users[1].Status)
	assert.Equal(t, "blocked", res.Users[2].Status)
}

func TestUserService_Get(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *mocks.MockUser)
		wantKind failure.Kind
		check    func(t *testing.T, bookings int, spent float64)
	}{
		{
			name: "profile with bookings and totals",
			setup: func(repo *mocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: 4, FullName: "Asha", IsActive: model.StateActive}, nil)
				repo.EXPECT().GetBookings(gomock.Any(), int64(4)).Return([]model.Booking{
					{BookingID: 12, TrekName: "Valley Trail", TotalAmount: 9000},
					{BookingID: 5, TrekName: "Lake Loop", TotalAmount: 4500},
				}, nil)
			},
			check: func(t *testing.T, bookings int, spent float64) {
				assert.Equal(t, 2, bookings)
				assert.InDelta(t, 13500.0, spent, 0.001)
			},
		},
		{
			name: "user without bookings",
			setup: func(repo *mocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: 4}, nil)
				repo.EXPECT().GetBookings(gomock.Any(), int64(4)).Return([]model.Booking{}, nil)
			},
			check: func(t *testing.T, bookings int, spent float64) {
				assert.Zero(t, bookings)
				assert.Zero(t, spent)
			},
		},
		{
			name: "missing user",
			setup: func(repo *mocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			wantKind: failure.KindNotFound,
		},
		{
			name: "storage error",
			setup: func(repo *mocks.MockUser) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, errors.New("connection reset"))
			},
			wantKind: failure.KindUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockUser(ctrl)
			tt.setup(repo)

			res, err := service.New(repo, otelMocks.NewOtel()).Get(context.Background(), 4)

			if tt.check == nil {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.GetKind(err))

				return
			}

			require.NoError(t, err)
			tt.check(t, res.TotalBookings, res.TotalSpent)
		})
	}
}
