package models

// BlogPostTag links a blog post to a tag. The unique index on the
// (blog_post_id, tag_id) pair gives the association set semantics: duplicates
// never accumulate no matter how often the pair is re-inserted.
type BlogPostTag struct {
	ID         uint `json:"id" db:"id" gorm:"primaryKey"`
	BlogPostID uint `json:"blog_post_id" db:"blog_post_id" gorm:"not null;index:idx_blog_post_tag_post;uniqueIndex:idx_blog_post_tag_pair"`
	TagID      uint `json:"tag_id" db:"tag_id" gorm:"not null;index:idx_blog_post_tag_tag;uniqueIndex:idx_blog_post_tag_pair"`
}
