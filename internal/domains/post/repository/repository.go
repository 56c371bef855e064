package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"trekdesk/infras/otel"
	"trekdesk/infras/postgres"
	"trekdesk/internal/domains/post/model"
	"trekdesk/shared"
	"trekdesk/shared/constant"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/logger"
	gRepo "trekdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

const queryView = `
	SELECT posts.*,
		COALESCE(categories.name, '') AS category_name,
		COALESCE((
			SELECT array_agg(tags.name ORDER BY tags.name)
			FROM post_tags
			JOIN tags ON tags.id = post_tags.tag_id
			WHERE post_tags.post_id = posts.id
		), '{}') AS tags
	FROM posts
	LEFT JOIN categories ON categories.id = posts.category_id
	%s %s %s`

const queryCount = `
	SELECT COUNT(*)
	FROM posts
	LEFT JOIN categories ON categories.id = posts.category_id
	%s`

// Existing tags keep their first spelling.
const queryUpsertTag = `
	INSERT INTO tags (name, slug) VALUES ($1, $2)
	ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug
	RETURNING id`

const queryReviews = `
	SELECT c.id, c.post_id, p.title AS post_title, p.slug AS post_slug, p.status AS post_status,
		c.author_name, c.content, c.rating, c.status, c.created_at
	FROM comments c
	JOIN posts p ON p.id = c.post_id
	ORDER BY c.created_at DESC, c.id DESC`

var sortByName = gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}

type Post interface {
	InsertReturningTx(ctx context.Context, tx *sqlx.Tx, post model.Post) (int64, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Post, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetCategoryTx(ctx context.Context, tx *sqlx.Tx, name string) (model.Category, error)
	GetCategories(ctx context.Context) ([]model.Category, error)
	ReplaceTagsTx(ctx context.Context, tx *sqlx.Tx, postID int64, tags []model.Tag) error
	GetView(ctx context.Context, id int64) (model.View, error)
	GetList(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.View, error)
	CountList(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetReviews(ctx context.Context) ([]model.Review, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Post]
	categories gRepo.Repository[model.Category]
	postTags   gRepo.Repository[model.PostTag]
	db         *postgres.Connection
	otel       otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Post {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Post](model.EntityName, model.TableName, model.FieldID, db, otel),
		categories: gRepo.NewRepository[model.Category](model.CategoryEntityName, model.CategoryTableName, model.FieldID, db, otel),
		postTags:   gRepo.NewRepository[model.PostTag](model.PostTagEntityName, model.PostTagTableName, model.FieldPostID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetCategoryTx(ctx context.Context, tx *sqlx.Tx, name string) (model.Category, error) {
	return r.categories.GetTx(ctx, tx, shared.FilterByField(model.FieldName, model.CategoryTableName, name)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetCategories(ctx context.Context) ([]model.Category, error) {
	return r.categories.GetAll(ctx, sortByName, gDto.FilterGroup{}) //nolint:wrapcheck
}

// ReplaceTagsTx upserts tags by slug and makes them the only tags linked to the post.
func (r *repositoryImpl) ReplaceTagsTx(ctx context.Context, tx *sqlx.Tx, postID int64, tags []model.Tag) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".post.ReplaceTagsTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.postTags.DeleteTx(ctx, tx, shared.FilterByID(postID, model.FieldPostID, model.PostTagTableName)); err != nil {
		return fmt.Errorf("failed to unlink tags: %w", err)
	}

	links := make([]model.PostTag, len(tags))

	for i, tag := range tags {
		var tagID int64

		if err = tx.QueryRowxContext(ctx, queryUpsertTag, tag.Name, tag.Slug).Scan(&tagID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to upsert tag %q: %w", tag.Slug, err)
		}

		links[i] = model.PostTag{PostID: postID, TagID: tagID}
	}

	if err = r.postTags.InsertBulkTx(ctx, tx, links); err != nil {
		return fmt.Errorf("failed to link tags: %w", err)
	}

	return nil
}

// GetView returns the zero view when the post does not exist.
func (r *repositoryImpl) GetView(ctx context.Context, id int64) (model.View, error) {
	views, err := r.GetList(ctx, gDto.QueryParams{}, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return model.View{}, err
	}

	if len(views) == 0 {
		return model.View{}, nil
	}

	return views[0], nil
}

// GetList pages posts joined with their category and tags. Filters may target posts or categories.
func (r *repositoryImpl) GetList(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (views []model.View, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".post.GetList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := r.BuildWhereClause(ctx, filter)

	ordering := "ORDER BY posts.created_at DESC, posts.id DESC"
	if params.SortBy != "" && params.SortDir != "" {
		ordering = fmt.Sprintf("ORDER BY posts.%s %s", params.SortBy, params.SortDir)
	}

	var pagination string

	if params.Page > 0 && params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit

		pagination = "LIMIT :limit OFFSET :offset"
	}

	query := fmt.Sprintf(queryView, where, ordering, pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	views = []model.View{}

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return views, fmt.Errorf("failed to prepare post list: %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &views, args); err != nil {
		logger.ErrorWithStack(err)

		return views, fmt.Errorf("failed to get post list: %w", err)
	}

	return views, nil
}

func (r *repositoryImpl) CountList(ctx context.Context, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".post.CountList")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := r.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf(queryCount, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to prepare post count: %w", err)
	}
	defer prepare.Close()

	if err = prepare.GetContext(ctx, &total, args); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return total, nil
}

func (r *repositoryImpl) GetReviews(ctx context.Context) (reviews []model.Review, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".post.GetReviews")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryReviews)

	reviews = []model.Review{}
	if err = r.db.Read.SelectContext(ctx, &reviews, queryReviews); err != nil {
		logger.ErrorWithStack(err)

		return reviews, fmt.Errorf("failed to get reviews: %w", err)
	}

	return reviews, nil
}
