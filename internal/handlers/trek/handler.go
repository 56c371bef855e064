package trek

import (
	"context"
	"net/http"
	"slices"
	"strings"
	"trekdesk/infras/otel"
	"trekdesk/internal/domains/trek/model"
	"trekdesk/internal/domains/trek/model/dto"
	"trekdesk/internal/domains/trek/service"
	"trekdesk/internal/handlers/media"
	"trekdesk/shared"
	"trekdesk/shared/constant"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/failure"
	"trekdesk/shared/validator"
	"trekdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

var listFilters = []gDto.Filter{
	{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Table: model.TableName},
	{Field: model.FieldLocation, Operator: gDto.FilterOperatorLike, Table: model.TableName},
	{Field: model.FieldCategory, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	{Field: model.FieldDifficulty, Operator: gDto.FilterOperatorEq, Table: model.TableName},
}

type Handler struct {
	service  service.Trek
	uploader media.Uploader
	otel     otel.Otel
}

func New(service service.Trek, uploader media.Uploader, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		uploader: uploader,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/treks", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTrek)
		routerGroup.Get("/", handler.GetTreks)
		routerGroup.Get("/summaries", handler.GetTrekSummaries)
		routerGroup.Get("/{id}", handler.GetTrekByID)
		routerGroup.Get("/{id}/edit", handler.GetTrekForUpdate)
		routerGroup.Put("/{id}", handler.UpdateTrek)
	})
}

// readRequest decodes the payload form field and uploads the attached media.
// Every uploaded object is discarded again if anything after the upload fails.
func (handler *Handler) readRequest(ctx context.Context, request *http.Request) (dto.TrekRequest, dto.MediaRefs, error) {
	var (
		req  dto.TrekRequest
		refs dto.MediaRefs
	)

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, refs, failure.BadRequest(err) //nolint:wrapcheck
	}

	if err := validator.Validate(strings.NewReader(request.FormValue(constant.FormPayload)), &req); err != nil {
		return req, refs, err //nolint:wrapcheck
	}

	covers := media.Files(request.MultipartForm, constant.FormCoverImage)
	gallery := media.Files(request.MultipartForm, constant.FormGallery)

	if len(covers) > 1 {
		return req, refs, failure.Validation("only one cover image is allowed") //nolint:wrapcheck
	}

	if len(gallery) > constant.MaxGalleryFiles {
		return req, refs, failure.Validation("too many gallery images") //nolint:wrapcheck
	}

	if err := media.Validate(slices.Concat(covers, gallery)...); err != nil {
		return req, refs, err //nolint:wrapcheck
	}

	if len(covers) == 1 {
		url, err := handler.uploader.Upload(ctx, media.DirectoryTreks, covers[0])
		if err != nil {
			return req, refs, err //nolint:wrapcheck
		}

		refs.CoverImage = url
	}

	urls, err := handler.uploader.UploadAll(ctx, media.DirectoryTreks, gallery)
	if err != nil {
		handler.uploader.Discard(ctx, refs.All()...)

		return req, dto.MediaRefs{}, err //nolint:wrapcheck
	}

	refs.Gallery = urls

	return req, refs, nil
}

// CreateTrek creates a trek with its batches and media.
// @Summary Create a trek
// @Description Create a trek aggregate. The trek itself is a JSON document in the payload field.
// @Tags Trek
// @Accept multipart/form-data
// @Produce json
// @Param payload formData string true "Trek JSON (dto.TrekRequest)"
// @Param cover_image formData file true "Cover image"
// @Param gallery formData file false "Gallery images (up to 10)"
// @Success 201 {object} response.Data[dto.CreateTrekResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/treks [post]
// @Security BearerAuth
func (handler *Handler) CreateTrek(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTrek")
	defer scope.End()

	req, refs, err := handler.readRequest(ctx, request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read trek request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req, refs)
	if err != nil {
		handler.uploader.Discard(ctx, refs.All()...)

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create trek")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Trek created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdateTrek replaces a trek aggregate.
// @Summary Update a trek
// @Description Reconcile the stored trek, its lists, batches and gallery with the payload.
// @Tags Trek
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Trek ID"
// @Param payload formData string true "Trek JSON (dto.TrekRequest)"
// @Param cover_image formData file false "Replacement cover image"
// @Param gallery formData file false "Additional gallery images (up to 10)"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/treks/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateTrek(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTrek")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req, refs, err := handler.readRequest(ctx, request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read trek request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, id, req, refs); err != nil {
		handler.uploader.Discard(ctx, refs.All()...)

		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update trek")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Trek updated successfully")

	response.WithMessage(writer, http.StatusOK, "Trek updated successfully")
}

// GetTreks lists treks with aggregates over their upcoming batches.
// @Summary Get all treks
// @Tags Trek
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param location query string false "Filter by location"
// @Param category query string false "Filter by category"
// @Param difficulty query string false "Filter by difficulty"
// @Success 200 {object} response.Data[dto.GetTreksResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/treks [get]
// @Security BearerAuth
func (handler *Handler) GetTreks(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTreks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	query := request.URL.Query()
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, filter := range listFilters {
		if value := query.Get(filter.Field); value != "" {
			filter.Value = value
			filterGroup.Filters = append(filterGroup.Filters, filter)
		}
	}

	treks, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get treks")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, treks)
}

// GetTrekSummaries lists every trek with batch and booking counts.
// @Summary Get trek summaries
// @Tags Trek
// @Produce json
// @Success 200 {object} response.Data[dto.GetSummariesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/treks/summaries [get]
// @Security BearerAuth
func (handler *Handler) GetTrekSummaries(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrekSummaries")
	defer scope.End()

	summaries, err := handler.service.GetSummaries(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trek summaries")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, summaries)
}

// GetTrekByID returns the nested trek.
// @Summary Get a trek by ID
// @Tags Trek
// @Produce json
// @Param id path int true "Trek ID"
// @Success 200 {object} response.Data[dto.TrekDetailResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/treks/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTrekByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrekByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	trek, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get trek")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, trek)
}

// GetTrekForUpdate returns the trek in the shape accepted by UpdateTrek.
// @Summary Get a trek for editing
// @Tags Trek
// @Produce json
// @Param id path int true "Trek ID"
// @Success 200 {object} response.Data[dto.TrekForUpdateResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/treks/{id}/edit [get]
// @Security BearerAuth
func (handler *Handler) GetTrekForUpdate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrekForUpdate")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	trek, err := handler.service.GetForUpdate(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get trek for update")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, trek)
}
