package post

import (
	"context"
	"net/http"
	"strings"
	"trekdesk/infras/otel"
	"trekdesk/internal/domains/post/model"
	"trekdesk/internal/domains/post/model/dto"
	"trekdesk/internal/domains/post/service"
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

type Handler struct {
	service  service.Post
	uploader media.Uploader
	otel     otel.Otel
}

func New(service service.Post, uploader media.Uploader, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		uploader: uploader,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/posts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePost)
		routerGroup.Get("/", handler.GetPosts)
		routerGroup.Get("/categories", handler.GetCategories)
		routerGroup.Get("/reviews", handler.GetReviews)
		routerGroup.Get("/{id}", handler.GetPostByID)
		routerGroup.Put("/{id}", handler.UpdatePost)
		routerGroup.Delete("/{id}", handler.DeletePost)
	})
}

// readRequest decodes the payload field and uploads the optional featured image.
func (handler *Handler) readRequest(ctx context.Context, request *http.Request) (dto.PostRequest, string, error) {
	req := dto.PostRequest{}

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, "", failure.BadRequest(err) //nolint:wrapcheck
	}

	if err := validator.Validate(strings.NewReader(request.FormValue(constant.FormPayload)), &req); err != nil {
		return req, "", err //nolint:wrapcheck
	}

	images := media.Files(request.MultipartForm, constant.FormImage)

	switch len(images) {
	case 0:
		return req, "", nil
	case 1:
	default:
		return req, "", failure.Validation("only one featured image is allowed") //nolint:wrapcheck
	}

	if err := media.Validate(images...); err != nil {
		return req, "", err //nolint:wrapcheck
	}

	url, err := handler.uploader.Upload(ctx, media.DirectoryPosts, images[0])
	if err != nil {
		return req, "", err //nolint:wrapcheck
	}

	return req, url, nil
}

// CreatePost creates a blog post.
// @Summary Create a post
// @Tags Post
// @Accept multipart/form-data
// @Produce json
// @Param payload formData string true "Post JSON (dto.PostRequest)"
// @Param image formData file false "Featured image"
// @Success 201 {object} response.Data[dto.CreatePostResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts [post]
// @Security BearerAuth
func (handler *Handler) CreatePost(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePost")
	defer scope.End()

	author, _ := ctx.Value(constant.ContextKeyUserEmail).(string)

	req, image, err := handler.readRequest(ctx, request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read post request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req, author, image)
	if err != nil {
		handler.uploader.Discard(ctx, image)

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create post")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Post created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// UpdatePost updates a blog post.
// @Summary Update a post
// @Description Empty fields keep their stored value. Tags are replaced only when sent.
// @Tags Post
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Post ID"
// @Param payload formData string true "Post JSON (dto.PostRequest)"
// @Param image formData file false "Replacement featured image"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/posts/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdatePost(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePost")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	req, image, err := handler.readRequest(ctx, request)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read post request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Update(ctx, id, req, image); err != nil {
		handler.uploader.Discard(ctx, image)

		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update post")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Post updated successfully")
}

// GetPosts lists posts with category and tags.
// @Summary Get all posts
// @Tags Post
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param title query string false "Filter by title"
// @Success 200 {object} response.Data[dto.GetPostsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/posts [get]
// @Security BearerAuth
func (handler *Handler) GetPosts(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPosts")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status := request.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if title := request.URL.Query().Get(model.FieldTitle); title != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTitle,
			Operator: gDto.FilterOperatorLike,
			Value:    title,
			Table:    model.TableName,
		})
	}

	posts, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get posts")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, posts)
}

// GetPostByID returns a single post.
// @Summary Get a post by ID
// @Tags Post
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} response.Data[dto.PostResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/posts/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPostByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPostByID")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	post, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get post")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, post)
}

// DeletePost deletes a post and its tag links.
// @Summary Delete a post
// @Tags Post
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/posts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePost(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePost")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete post")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Post deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Post deleted successfully")
}

// GetCategories lists post categories.
// @Summary Get post categories
// @Tags Post
// @Produce json
// @Success 200 {object} response.Data[[]dto.CategoryResponse]
// @Failure 500 {object} response.Error
// @Router /v1/posts/categories [get]
// @Security BearerAuth
func (handler *Handler) GetCategories(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	categories, err := handler.service.Categories(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get categories")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, categories)
}

// GetReviews lists post comments with their post.
// @Summary Get post reviews
// @Tags Post
// @Produce json
// @Success 200 {object} response.Data[[]dto.ReviewResponse]
// @Failure 500 {object} response.Error
// @Router /v1/posts/reviews [get]
// @Security BearerAuth
func (handler *Handler) GetReviews(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReviews")
	defer scope.End()

	reviews, err := handler.service.Reviews(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reviews")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, reviews)
}
