package batch

import (
	"context"
	"net/http"
	"trekdesk/infras/otel"
	"trekdesk/internal/domains/batch/model/dto"
	"trekdesk/internal/domains/batch/service"
	"trekdesk/shared"
	"trekdesk/shared/constant"
	"trekdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Batch
	otel    otel.Otel
}

func New(service service.Batch, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/batches", func(routerGroup chi.Router) {
		routerGroup.Get("/by-trek/{id}", handler.GetBatchesByTrek)
		routerGroup.Patch("/{id}/stop", handler.StopBatch)
		routerGroup.Patch("/{id}/resume", handler.ResumeBatch)
		routerGroup.Patch("/{id}/complete", handler.CompleteBatch)
	})
}

type transition func(ctx context.Context, id int64) (dto.BatchViewResponse, error)

func (handler *Handler) transition(writer http.ResponseWriter, request *http.Request, name string, apply transition) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	batch, err := apply(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Str("transition", name).Msg("failed to change batch status")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, batch)
}

// StopBatch closes a batch for new bookings.
// @Summary Stop a batch
// @Tags Batch
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} response.Data[dto.BatchViewResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/batches/{id}/stop [patch]
// @Security BearerAuth
func (handler *Handler) StopBatch(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, "StopBatch", handler.service.Stop)
}

// ResumeBatch reopens a stopped batch.
// @Summary Resume a batch
// @Tags Batch
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} response.Data[dto.BatchViewResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/batches/{id}/resume [patch]
// @Security BearerAuth
func (handler *Handler) ResumeBatch(writer http.ResponseWriter, request *http.Request) {
	handler.transition(writer, request, "ResumeBatch", handler.service.Resume)
}

// CompleteBatch marks a finished batch and its confirmed bookings as completed.
// @Summary Complete a batch
// @Description Only a batch whose end date has passed can be completed. Confirmed bookings become completed in the same transaction.
// @Tags Batch
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} response.Data[dto.BatchCompletionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/batches/{id}/complete [patch]
// @Security BearerAuth
func (handler *Handler) CompleteBatch(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteBatch")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Complete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to complete batch")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Batch completed successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBatchesByTrek lists the batches of a trek with booking stats.
// @Summary Get batches of a trek
// @Tags Batch
// @Produce json
// @Param id path int true "Trek ID"
// @Success 200 {object} response.Data[dto.GetBatchesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/batches/by-trek/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBatchesByTrek(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBatchesByTrek")
	defer scope.End()

	trekID, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	batches, err := handler.service.GetByTrek(ctx, trekID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("trekID", trekID).Msg("failed to get batches")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, batches)
}
