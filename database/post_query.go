package database

import (
	"github.com/quillstack/blog-backend/models"
)

// defaultPageSize bounds list results when the caller does not ask for a
// specific page size.
const defaultPageSize = 50

// PostFilter restricts a listing. All set fields combine with logical AND.
type PostFilter struct {
	Published  *bool
	CategoryID *uint
	TagID      *uint
	Limit      int
	Offset     int
}

// List returns the posts matching the filter, newest-first. created_at DESC
// alone would make pagination unstable when two posts share a timestamp, so
// id DESC is always applied as the tie-break.
//
// The tag filter runs as a membership subquery instead of a join: the result
// can never contain a post twice, whatever the association table holds.
func (r *BlogPostRepo) List(filter PostFilter) ([]*models.BlogPost, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := r.db.Model(&models.BlogPost{})
	if filter.Published != nil {
		query = query.Where("published = ?", *filter.Published)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.TagID != nil {
		query = query.Where(
			"id IN (?)",
			r.db.Model(&models.BlogPostTag{}).Select("blog_post_id").Where("tag_id = ?", *filter.TagID),
		)
	}

	var posts []*models.BlogPost
	err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	postIDs := make([]uint, 0, len(posts))
	for _, post := range posts {
		postIDs = append(postIDs, post.ID)
	}
	tagsByPost, err := tagsForPosts(r.db, postIDs)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		post.Tags = tagsByPost[post.ID]
		if post.Tags == nil {
			post.Tags = []models.Tag{}
		}
	}
	return posts, nil
}
