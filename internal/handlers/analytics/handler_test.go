package analytics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "trekdesk/infras/otel/mocks"
	"trekdesk/internal/domains/analytics/model/dto"
	serviceMocks "trekdesk/internal/domains/analytics/service/mocks"
	"trekdesk/internal/handlers/analytics"
	"trekdesk/shared/failure"
)

func TestAnalyticsRoutes(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		expect func(service *serviceMocks.MockAnalytics)
		code   int
	}{
		{
			name: "revenue",
			path: "/analytics/revenue",
			expect: func(service *serviceMocks.MockAnalytics) {
				service.EXPECT().Revenue(gomock.Any()).Return(dto.RevenueResponse{TotalRevenue: 1500}, nil)
			},
			code: http.StatusOK,
		},
		{
			name: "dashboard with storage down",
			path: "/analytics/dashboard",
			expect: func(service *serviceMocks.MockAnalytics) {
				service.EXPECT().Dashboard(gomock.Any()).Return(dto.DashboardResponse{}, failure.StorageFailure(assert.AnError, false))
			},
			code: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := serviceMocks.NewMockAnalytics(gomock.NewController(t))
			tt.expect(service)

			router := chi.NewRouter()
			handler := analytics.New(service, otelMocks.NewOtel())
			handler.Router(router)

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.code, recorder.Code)
			assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
		})
	}
}
