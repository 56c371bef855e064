package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trekdesk/config"
	"trekdesk/infras/otel"
	"trekdesk/infras/postgres"
	"trekdesk/internal/domains/post/model"
	"trekdesk/internal/domains/post/model/dto"
	"trekdesk/internal/domains/post/repository"
	"trekdesk/shared"
	"trekdesk/shared/cache"
	"trekdesk/shared/constant"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errPostNotFound    = "post not found"
	errInvalidCategory = "invalid category: "

	cacheKeyList   = "list"
	cacheKeyDetail = "detail"
)

var SortableFields = []string{
	constant.FieldCreatedAt,
	model.FieldTitle,
	model.FieldPublishedAt,
}

type Post interface {
	Create(ctx context.Context, req dto.PostRequest, author, featuredImage string) (dto.CreatePostResponse, error)
	Update(ctx context.Context, id int64, req dto.PostRequest, featuredImage string) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPostsResponse, error)
	Get(ctx context.Context, id int64) (dto.PostResponse, error)
	Delete(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]dto.CategoryResponse, error)
	Reviews(ctx context.Context) ([]dto.ReviewResponse, error)
}

type serviceImpl struct {
	repo       repository.Post
	transactor postgres.Transactor
	cache      cache.RedisCache
	cfg        *config.Config
	otel       otel.Otel
}

func New(repo repository.Post, transactor postgres.Transactor, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Post {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		cache:      cache,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) categoryID(ctx context.Context, tx *sqlx.Tx, name string) (int64, error) {
	category, err := s.repo.GetCategoryTx(ctx, tx, name)
	if err != nil {
		return 0, fmt.Errorf("failed to get category: %w", err)
	}

	if category.ID == 0 {
		return 0, failure.Validation(errInvalidCategory + name) //nolint:wrapcheck
	}

	return category.ID, nil
}

// Create writes the post and its tags in one transaction.
func (s *serviceImpl) Create(ctx context.Context, req dto.PostRequest, author, featuredImage string) (res dto.CreatePostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".post.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.ValidateCreate(); err != nil {
		return res, err
	}

	publishedAt, err := req.PublishedAt(req.Status, nil)
	if err != nil {
		return res, err
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		categoryID, err := s.categoryID(ctx, tx, req.Category)
		if err != nil {
			return err
		}

		post := req.ToModel(categoryID, author, featuredImage, publishedAt)

		res.ID, err = s.repo.InsertReturningTx(ctx, tx, post)
		if err != nil {
			return fmt.Errorf("failed to insert post: %w", err)
		}

		res.Slug = post.Slug

		if err := s.repo.ReplaceTagsTx(ctx, tx, res.ID, req.TagModels()); err != nil {
			return fmt.Errorf("failed to save tags: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("failed to create post")

		return dto.CreatePostResponse{}, fmt.Errorf("failed to create post: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixPosts)

	return res, nil
}

// Update merges req over the stored post. Tags are replaced only when req carries them.
func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.PostRequest, featuredImage string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".post.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = req.ValidateUpdate(); err != nil {
		return err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		post, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock post: %w", err)
		}

		if post.ID == 0 {
			return failure.NotFound(errPostNotFound) //nolint:wrapcheck
		}

		var categoryID *int64

		if req.Category != "" {
			resolved, err := s.categoryID(ctx, tx, req.Category)
			if err != nil {
				return err
			}

			categoryID = &resolved
		}

		status := post.Status
		if req.Status != "" {
			status = req.Status
		}

		publishedAt, err := req.PublishedAt(status, post.PublishedAt)
		if err != nil {
			return err
		}

		if err := s.repo.UpdateTx(ctx, tx, req.ToUpdateFields(post, categoryID, featuredImage, publishedAt), filter); err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}

		if req.Tags == nil {
			return nil
		}

		if err := s.repo.ReplaceTagsTx(ctx, tx, id, req.TagModels()); err != nil {
			return fmt.Errorf("failed to replace tags: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update post")

		return fmt.Errorf("failed to update post: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixPosts)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPostsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".post.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params.RestrictSort(SortableFields...)

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(constant.CachePrefixPosts, cacheKeyList), params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for posts")

		return res, nil
	}

	total, err := s.repo.CountList(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count posts")

		return res, fmt.Errorf("failed to count posts: %w", err)
	}

	views, err := s.repo.GetList(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get posts")

		return res, fmt.Errorf("failed to get posts: %w", err)
	}

	res.FromModels(views, total, params.Limit)
	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.PostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".post.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CachePrefixPosts, cacheKeyDetail, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for post")

		return res, nil
	}

	view, err := s.repo.GetView(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get post")

		return res, fmt.Errorf("failed to get post: %w", err)
	}

	if view.ID == 0 {
		return res, failure.NotFound(errPostNotFound) //nolint:wrapcheck
	}

	res.FromModel(view)
	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".post.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exists, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to check post")

		return fmt.Errorf("failed to check post: %w", err)
	}

	if !exists {
		return failure.NotFound(errPostNotFound) //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete post")

		return fmt.Errorf("failed to delete post: %w", err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CachePrefixPosts)

	return nil
}

func (s *serviceImpl) Categories(ctx context.Context) (res []dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".post.Categories")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	categories, err := s.repo.GetCategories(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	return dto.CategoriesFromModels(categories), nil
}

func (s *serviceImpl) Reviews(ctx context.Context) (res []dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".post.Reviews")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reviews, err := s.repo.GetReviews(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}

	return dto.ReviewsFromModels(reviews), nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Str("cacheKey", key).Msg("failed to save posts to cache")
	}
}
