package booking

import (
	"net/http"
	"trekdesk/infras/otel"
	"trekdesk/internal/domains/booking/model"
	"trekdesk/internal/domains/booking/service"
	"trekdesk/shared"
	"trekdesk/shared/constant"
	gDto "trekdesk/shared/dto"
	"trekdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var listFilters = []gDto.Filter{
	{Field: model.FieldBookingStatus, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	{Field: model.FieldPaymentStatus, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	{Field: model.FieldTrekID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	{Field: model.FieldBatchID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	{Field: model.FieldCustomerName, Operator: gDto.FilterOperatorLike, Table: model.TableName},
}

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/batch/{id}", handler.GetBookingsByBatch)
		routerGroup.Post("/sweep", handler.SweepCompleted)
	})
}

// GetBookings lists bookings.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_status query string false "Filter by booking status"
// @Param payment_status query string false "Filter by payment status"
// @Param trek_id query int false "Filter by trek"
// @Param batch_id query int false "Filter by batch"
// @Param customer_name query string false "Filter by customer name"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	query := request.URL.Query()
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, filter := range listFilters {
		value := query.Get(filter.Field)
		if value == "" {
			continue
		}

		if filter.Field == model.FieldTrekID || filter.Field == model.FieldBatchID {
			id, err := shared.ParseID(value)
			if err != nil {
				response.WithError(writer, err)

				return
			}

			filter.Value = id
		} else {
			filter.Value = value
		}

		filterGroup.Filters = append(filterGroup.Filters, filter)
	}

	bookings, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetBookingsByBatch lists the bookings of a batch with participants and add-ons.
// @Summary Get bookings of a batch
// @Tags Booking
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} response.Data[dto.GetBatchBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/batch/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingsByBatch(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingsByBatch")
	defer scope.End()

	batchID, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	bookings, err := handler.service.GetByBatch(ctx, batchID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("batchID", batchID).Msg("failed to get batch bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// SweepCompleted completes every confirmed booking whose batch has ended.
// @Summary Complete finished bookings
// @Description Runs the same sweep the scheduler runs.
// @Tags Booking
// @Produce json
// @Success 200 {object} response.Data[dto.SweepResponse]
// @Failure 500 {object} response.Error
// @Router /v1/bookings/sweep [post]
// @Security BearerAuth
func (handler *Handler) SweepCompleted(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SweepCompleted")
	defer scope.End()

	res, err := handler.service.SweepCompleted(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to sweep completed bookings")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Completed bookings swept")

	response.WithJSON(writer, http.StatusOK, res)
}
