package dto

import (
	"strings"
	"time"
	"trekdesk/internal/domains/post/model"
	"trekdesk/shared"
	gDto "trekdesk/shared/dto"
	"trekdesk/shared/failure"
	gModel "trekdesk/shared/model"
	"trekdesk/shared/timezone"
)

const (
	errRequiredFields = "title, excerpt, content and category are required"
	errEmptySlug      = "title must contain letters or digits"
)

// PostRequest carries a post write. On update empty scalars keep the stored
// value and a nil Tags keeps the stored tags.
type PostRequest struct {
	Title       string   `json:"title"        validate:"omitempty,max=255"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Category    string   `json:"category"     validate:"omitempty,max=100"`
	Status      string   `json:"status"       validate:"omitempty,oneof=draft published"`
	PublishDate string   `json:"publish_date" validate:"omitempty,dateonly"`
	Tags        []string `json:"tags"`
}

func (r *PostRequest) trim() {
	r.Title = strings.TrimSpace(r.Title)
	r.Excerpt = strings.TrimSpace(r.Excerpt)
	r.Content = strings.TrimSpace(r.Content)
	r.Category = strings.TrimSpace(r.Category)
}

// ValidateCreate trims the request and checks the fields a new post needs.
func (r *PostRequest) ValidateCreate() error {
	r.trim()

	if r.Title == "" || r.Excerpt == "" || r.Content == "" || r.Category == "" {
		return failure.Validation(errRequiredFields) //nolint:wrapcheck
	}

	if shared.Slugify(r.Title) == "" {
		return failure.Validation(errEmptySlug) //nolint:wrapcheck
	}

	if r.Status == "" {
		r.Status = model.StatusDraft
	}

	return nil
}

func (r *PostRequest) ValidateUpdate() error {
	r.trim()

	if r.Title != "" && shared.Slugify(r.Title) == "" {
		return failure.Validation(errEmptySlug) //nolint:wrapcheck
	}

	return nil
}

// PublishedAt resolves the publish time for status. A draft has none. A
// published post keeps current unless an explicit date is given.
func (r *PostRequest) PublishedAt(status string, current *time.Time) (*time.Time, error) {
	if status != model.StatusPublished {
		return nil, nil //nolint:nilnil
	}

	if r.PublishDate != "" {
		date, err := timezone.ParseDate(r.PublishDate)
		if err != nil {
			return nil, failure.Validation("invalid publish date: " + r.PublishDate) //nolint:wrapcheck
		}

		return &date, nil
	}

	if current != nil {
		return current, nil
	}

	now := timezone.Now()

	return &now, nil
}

// TagModels deduplicates the tags by slug, keeping the first spelling.
func (r *PostRequest) TagModels() []model.Tag {
	tags := make([]model.Tag, 0, len(r.Tags))
	seen := make(map[string]struct{}, len(r.Tags))

	for _, name := range r.Tags {
		name = strings.TrimSpace(name)

		slug := shared.Slugify(name)
		if slug == "" {
			continue
		}

		if _, ok := seen[slug]; ok {
			continue
		}

		seen[slug] = struct{}{}
		tags = append(tags, model.Tag{Name: name, Slug: slug})
	}

	return tags
}

func (r *PostRequest) ToModel(categoryID int64, author, featuredImage string, publishedAt *time.Time) model.Post {
	now := timezone.Now()

	return model.Post{
		Title:         r.Title,
		Slug:          shared.Slugify(r.Title),
		Excerpt:       r.Excerpt,
		Content:       r.Content,
		CategoryID:    &categoryID,
		Author:        author,
		FeaturedImage: featuredImage,
		Status:        r.Status,
		PublishedAt:   publishedAt,
		Metadata:      gModel.Metadata{CreatedAt: now, UpdatedAt: now},
	}
}

// ToUpdateFields merges the request over post. The returned map always sets
// status and published_at so a draft clears its publish time.
// postUpdate lists the columns an update only writes when a value is given.
type postUpdate struct {
	Title         string `db:"title"`
	Slug          string `db:"slug"`
	Excerpt       string `db:"excerpt"`
	Content       string `db:"content"`
	CategoryID    int64  `db:"category_id"`
	FeaturedImage string `db:"featured_image"`
}

func (r *PostRequest) ToUpdateFields(post model.Post, categoryID *int64, featuredImage string, publishedAt *time.Time) map[string]any {
	update := postUpdate{
		Title:         r.Title,
		Excerpt:       r.Excerpt,
		Content:       r.Content,
		FeaturedImage: featuredImage,
	}

	if r.Title != "" {
		update.Slug = shared.Slugify(r.Title)
	}

	if categoryID != nil {
		update.CategoryID = *categoryID
	}

	fields := shared.TransformFields(update)

	fields[model.FieldStatus] = post.Status
	if r.Status != "" {
		fields[model.FieldStatus] = r.Status
	}

	fields[model.FieldPublishedAt] = publishedAt

	return fields
}

type CreatePostResponse struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
}

type PostResponse struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	CategoryID    *int64     `json:"category_id"`
	Category      string     `json:"category"`
	Author        string     `json:"author"`
	FeaturedImage string     `json:"featured_image"`
	Status        string     `json:"status"`
	PublishedAt   *time.Time `json:"published_at"`
	Tags          []string   `json:"tags"`
	gDto.Metadata
}

func (r *PostResponse) FromModel(view model.View) {
	r.ID = view.ID
	r.Title = view.Title
	r.Slug = view.Slug
	r.Excerpt = view.Excerpt
	r.Content = view.Content
	r.CategoryID = view.CategoryID
	r.Category = view.CategoryName
	r.Author = view.Author
	r.FeaturedImage = view.FeaturedImage
	r.Status = view.Status
	r.PublishedAt = view.PublishedAt
	r.Metadata.FromModel(view.Metadata)

	r.Tags = []string{}
	if view.Tags != nil {
		r.Tags = view.Tags
	}
}

type GetPostsResponse struct {
	Posts     []PostResponse `json:"posts"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetPostsResponse) FromModels(views []model.View, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Posts = make([]PostResponse, len(views))
	for i, view := range views {
		r.Posts[i].FromModel(view)
	}
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func CategoriesFromModels(categories []model.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		res[i] = CategoryResponse{ID: category.ID, Name: category.Name}
	}

	return res
}

type ReviewResponse struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"post_id"`
	PostTitle  string    `json:"post_title"`
	PostSlug   string    `json:"post_slug"`
	PostStatus string    `json:"post_status"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func ReviewsFromModels(reviews []model.Review) []ReviewResponse {
	res := make([]ReviewResponse, len(reviews))
	for i, review := range reviews {
		res[i] = ReviewResponse(review)
	}

	return res
}
