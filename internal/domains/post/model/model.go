package model

import (
	"time"
	"trekdesk/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "posts"
	EntityName = "post"

	FieldID            = "id"
	FieldTitle         = "title"
	FieldSlug          = "slug"
	FieldExcerpt       = "excerpt"
	FieldContent       = "content"
	FieldCategoryID    = "category_id"
	FieldFeaturedImage = "featured_image"
	FieldStatus        = "status"
	FieldPublishedAt   = "published_at"
	FieldName          = "name"
	FieldPostID        = "post_id"
)

const (
	CategoryTableName  = "categories"
	CategoryEntityName = "category"
	TagTableName       = "tags"
	TagEntityName      = "tag"
	PostTagTableName   = "post_tags"
	PostTagEntityName  = "post_tag"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Post struct {
	ID            int64      `db:"id"             generated:"true"`
	Title         string     `db:"title"`
	Slug          string     `db:"slug"`
	Excerpt       string     `db:"excerpt"`
	Content       string     `db:"content"`
	CategoryID    *int64     `db:"category_id"`
	Author        string     `db:"author"`
	FeaturedImage string     `db:"featured_image"`
	Status        string     `db:"status"`
	PublishedAt   *time.Time `db:"published_at"`
	model.Metadata
}

type Category struct {
	ID        int64     `db:"id"         generated:"true"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type Tag struct {
	ID   int64  `db:"id"   generated:"true"`
	Name string `db:"name"`
	Slug string `db:"slug"`
}

type PostTag struct {
	PostID int64 `db:"post_id"`
	TagID  int64 `db:"tag_id"`
}

// View is a post joined with its category name and tag names.
type View struct {
	Post
	CategoryName string         `db:"category_name"`
	Tags         pq.StringArray `db:"tags"`
}

type Review struct {
	ID         int64     `db:"id"`
	PostID     int64     `db:"post_id"`
	PostTitle  string    `db:"post_title"`
	PostSlug   string    `db:"post_slug"`
	PostStatus string    `db:"post_status"`
	AuthorName string    `db:"author_name"`
	Content    string    `db:"content"`
	Rating     int       `db:"rating"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}
