package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"trekdesk/config"
	otelMocks "trekdesk/infras/otel/mocks"
	"trekdesk/infras/postgres"
	pgMocks "trekdesk/infras/postgres/mocks"
	"trekdesk/internal/domains/post/mocks"
	"trekdesk/internal/domains/post/model"
	"trekdesk/internal/domains/post/model/dto"
	"trekdesk/internal/domains/post/service"
	"trekdesk/shared/cache"
	cacheMocks "trekdesk/shared/cache/mocks"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/failure"
)

type fixture struct {
	repo  *mocks.MockPost
	cache *cacheMocks.MockRedisCache
	svc   service.Post
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:  mocks.NewMockPost(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	transactor := pgMocks.NewMockTransactor(ctrl)
	transactor.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn postgres.TxFunc) error {
			return fn(ctx, nil)
		}).
		AnyTimes()

	f.cache.EXPECT().Clear(gomock.Any(), "posts*").Return(nil).AnyTimes()

	f.svc = service.New(f.repo, transactor, f.cache, &config.Config{}, otelMocks.NewOtel())

	return f
}

func TestPostService_Create(t *testing.T) {
	t.Run("writes the post with deduplicated tags", func(t *testing.T) {
		f := newFixture(t)

		req := dto.PostRequest{
			Title:    " Winter Gear Guide ",
			Excerpt:  "What to pack",
			Content:  "Layers, boots and more.",
			Category: "Gear",
			Status:   model.StatusPublished,
			Tags:     []string{"Boots", "boots", " ", "Winter Treks"},
		}

		f.repo.EXPECT().GetCategoryTx(gomock.Any(), gomock.Any(), "Gear").Return(model.Category{ID: 3, Name: "Gear"}, nil)
		f.repo.EXPECT().
			InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, post model.Post) (int64, error) {
				assert.Equal(t, "Winter Gear Guide", post.Title)
				assert.Equal(t, "winter-gear-guide", post.Slug)
				assert.Equal(t, "admin@trekdesk.io", post.Author)
				assert.Equal(t, "https://cdn/posts/a.jpg", post.FeaturedImage)
				require.NotNil(t, post.CategoryID)
				assert.Equal(t, int64(3), *post.CategoryID)
				assert.NotNil(t, post.PublishedAt)

				return 21, nil
			})
		f.repo.EXPECT().ReplaceTagsTx(gomock.Any(), gomock.Any(), int64(21), []model.Tag{
			{Name: "Boots", Slug: "boots"},
			{Name: "Winter Treks", Slug: "winter-treks"},
		}).Return(nil)

		res, err := f.svc.Create(context.Background(), req, "admin@trekdesk.io", "https://cdn/posts/a.jpg")

		require.NoError(t, err)
		assert.Equal(t, dto.CreatePostResponse{ID: 21, Slug: "winter-gear-guide"}, res)
	})

	t.Run("draft has no publish time", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetCategoryTx(gomock.Any(), gomock.Any(), "Stories").Return(model.Category{ID: 4}, nil)
		f.repo.EXPECT().
			InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, post model.Post) (int64, error) {
				assert.Equal(t, model.StatusDraft, post.Status)
				assert.Nil(t, post.PublishedAt)

				return 22, nil
			})
		f.repo.EXPECT().ReplaceTagsTx(gomock.Any(), gomock.Any(), int64(22), []model.Tag{}).Return(nil)

		_, err := f.svc.Create(context.Background(), dto.PostRequest{Title: "Summit Day", Excerpt: "e", Content: "c", Category: "Stories"}, "", "")

		require.NoError(t, err)
	})

	t.Run("unknown category is a validation error", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetCategoryTx(gomock.Any(), gomock.Any(), "Cooking").Return(model.Category{}, nil)

		_, err := f.svc.Create(context.Background(), dto.PostRequest{Title: "t", Excerpt: "e", Content: "c", Category: "Cooking"}, "", "")

		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("missing fields never reach storage", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(context.Background(), dto.PostRequest{Title: "Only a title"}, "", "")

		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("tag failure aborts the create", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetCategoryTx(gomock.Any(), gomock.Any(), "Gear").Return(model.Category{ID: 3}, nil)
		f.repo.EXPECT().InsertReturningTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(23), nil)
		f.repo.EXPECT().ReplaceTagsTx(gomock.Any(), gomock.Any(), int64(23), gomock.Any()).Return(errors.New("tags down"))

		res, err := f.svc.Create(context.Background(), dto.PostRequest{Title: "t", Excerpt: "e", Content: "c", Category: "Gear", Tags: []string{"x"}}, "", "")

		require.Error(t, err)
		assert.Zero(t, res.ID)
	})
}

func TestPostService_Update(t *testing.T) {
	published := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	categoryID := int64(3)
	stored := model.Post{ID: 9, Title: "Old", Slug: "old", CategoryID: &categoryID, Status: model.StatusPublished, PublishedAt: &published}

	t.Run("keeps the first publish time and stored tags", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(stored, nil)
		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error {
				assert.Equal(t, "New Title", fields[model.FieldTitle])
				assert.Equal(t, "new-title", fields[model.FieldSlug])
				assert.Equal(t, model.StatusPublished, fields[model.FieldStatus])
				assert.Equal(t, &published, fields[model.FieldPublishedAt])
				assert.NotContains(t, fields, model.FieldCategoryID)
				assert.NotContains(t, fields, model.FieldFeaturedImage)
				assert.Equal(t, int64(9), filter.Filters[0].(gDto.Filter).Value)

				return nil
			})

		require.NoError(t, f.svc.Update(context.Background(), 9, dto.PostRequest{Title: "New Title"}, ""))
	})

	t.Run("moving to draft clears the publish time and replaces tags", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(stored, nil)
		f.repo.EXPECT().GetCategoryTx(gomock.Any(), gomock.Any(), "Stories").Return(model.Category{ID: 4}, nil)
		f.repo.EXPECT().
			UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusDraft, fields[model.FieldStatus])
				assert.Nil(t, fields[model.FieldPublishedAt])
				assert.Equal(t, int64(4), fields[model.FieldCategoryID])
				assert.Equal(t, "https://cdn/posts/b.jpg", fields[model.FieldFeaturedImage])

				return nil
			})
		f.repo.EXPECT().ReplaceTagsTx(gomock.Any(), gomock.Any(), int64(9), []model.Tag{}).Return(nil)

		req := dto.PostRequest{Status: model.StatusDraft, Category: "Stories", Tags: []string{}}

		require.NoError(t, f.svc.Update(context.Background(), 9, req, "https://cdn/posts/b.jpg"))
	})

	t.Run("missing post", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Post{}, nil)

		err := f.svc.Update(context.Background(), 9, dto.PostRequest{Title: "x"}, "")

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestPostService_Get(t *testing.T) {
	t.Run("loads and caches the view", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "posts:detail:4", gomock.Any()).Return(cache.ErrMiss)
		f.repo.EXPECT().GetView(gomock.Any(), int64(4)).Return(model.View{
			Post:         model.Post{ID: 4, Title: "Winter Gear"},
			CategoryName: "Gear",
		}, nil)
		f.cache.EXPECT().Save(gomock.Any(), "posts:detail:4", gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Get(context.Background(), 4)

		require.NoError(t, err)
		assert.Equal(t, "Gear", res.Category)
		assert.Equal(t, []string{}, res.Tags)
	})

	t.Run("missing post", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.ErrMiss)
		f.repo.EXPECT().GetView(gomock.Any(), int64(5)).Return(model.View{}, nil)

		_, err := f.svc.Get(context.Background(), 5)

		assert.True(t, failure.IsKind(err, failure.KindNotFound))
	})
}

func TestPostService_GetAll(t *testing.T) {
	f := newFixture(t)

	params := gDto.QueryParams{Page: 1, Limit: 2, SortBy: "author", SortDir: gDto.SortDirAsc}

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.ErrMiss)
	f.repo.EXPECT().CountList(gomock.Any(), gomock.Any()).Return(3, nil)
	f.repo.EXPECT().
		GetList(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup) ([]model.View, error) {
			assert.Empty(t, params.SortBy)

			return []model.View{{Post: model.Post{ID: 1}}, {Post: model.Post{ID: 2}}}, nil
		})
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Equal(t, 3, res.TotalData)
	assert.Len(t, res.Posts, 2)
}

func TestPostService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		exists   bool
		existErr error
		wantKind failure.Kind
		wantErr  bool
	}{
		{name: "deletes an existing post", exists: true},
		{name: "missing post", wantErr: true, wantKind: failure.KindNotFound},
		{name: "storage error", existErr: errors.New("db down"), wantErr: true, wantKind: failure.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.exists, tt.existErr)

			if tt.exists {
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := f.svc.Delete(context.Background(), 8)

			if !tt.wantErr {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, failure.GetKind(err))
		})
	}
}

func TestPostService_CategoriesAndReviews(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetCategories(gomock.Any()).Return([]model.Category{{ID: 1, Name: "Gear"}, {ID: 2, Name: "Stories"}}, nil)
	f.repo.EXPECT().GetReviews(gomock.Any()).Return([]model.Review{{ID: 5, PostTitle: "Winter Gear", Rating: 4}}, nil)

	categories, err := f.svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.CategoryResponse{{ID: 1, Name: "Gear"}, {ID: 2, Name: "Stories"}}, categories)

	reviews, err := f.svc.Reviews(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Winter Gear", reviews[0].PostTitle)
}
