package analytics

import (
	"net/http"
	"trekdesk/infras/otel"
	"trekdesk/internal/domains/analytics/service"
	"trekdesk/shared/constant"
	"trekdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Analytics
	otel    otel.Otel
}

func New(service service.Analytics, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/analytics", func(routerGroup chi.Router) {
		routerGroup.Get("/revenue", handler.GetRevenue)
		routerGroup.Get("/dashboard", handler.GetDashboard)
	})
}

// GetRevenue returns revenue totals by month and by trek.
// @Summary Get revenue analytics
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Data[dto.RevenueResponse]
// @Failure 500 {object} response.Error
// @Router /v1/analytics/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenue")
	defer scope.End()

	revenue, err := handler.service.Revenue(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, revenue)
}

// GetDashboard returns headline counts and the latest bookings.
// @Summary Get dashboard analytics
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 500 {object} response.Error
// @Router /v1/analytics/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	dashboard, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dashboard)
}
