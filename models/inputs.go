package models

import "time"

// CreateBlogPostInput carries every field accepted when creating a post.
// Nil pointer fields stay null; a nil TagIDs slice means no tags were provided
// at all, while an empty non-nil slice is an explicit empty set.
type CreateBlogPostInput struct {
	Slug            string     `json:"slug"`
	Title           string     `json:"title"`
	Content         string     `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	Published       bool       `json:"published"`
	PublicationDate *time.Time `json:"publication_date"`
	CategoryID      *uint      `json:"category_id"`
	Author          string     `json:"author"`
	TagIDs          []uint     `json:"tag_ids"`
}

// UpdateBlogPostInput is a partial update: each field is applied only when it
// was present in the payload. Published has no null state since the column is
// non-nullable. TagIDs present (even empty) replaces the whole association
// set; absent leaves associations untouched.
type UpdateBlogPostInput struct {
	ID              uint                `json:"-"`
	Slug            Optional[string]    `json:"slug"`
	Title           Optional[string]    `json:"title"`
	Content         Optional[string]    `json:"content"`
	Excerpt         Optional[string]    `json:"excerpt"`
	Published       Optional[bool]      `json:"published"`
	PublicationDate Optional[time.Time] `json:"publication_date"`
	CategoryID      Optional[uint]      `json:"category_id"`
	Author          Optional[string]    `json:"author"`
	TagIDs          Optional[[]uint]    `json:"tag_ids"`
}

// CreateCategoryInput carries the fields accepted when creating a category.
type CreateCategoryInput struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// UpdateCategoryInput is a partial category update.
type UpdateCategoryInput struct {
	ID          uint             `json:"-"`
	Slug        Optional[string] `json:"slug"`
	Name        Optional[string] `json:"name"`
	Description Optional[string] `json:"description"`
}

// CreateTagInput carries the fields accepted when creating a tag.
type CreateTagInput struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// UpdateTagInput is a partial tag update.
type UpdateTagInput struct {
	ID   uint             `json:"-"`
	Slug Optional[string] `json:"slug"`
	Name Optional[string] `json:"name"`
}
