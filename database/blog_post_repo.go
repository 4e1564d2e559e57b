package database

import (
	"errors"
	"time"

	"github.com/quillstack/blog-backend/errs"
	"github.com/quillstack/blog-backend/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *BlogPostRepo) GetDB() *gorm.DB {
	return r.db
}

// PostLookup selects a single post by id, slug, or both. When both are given
// the match is satisfied by either one (id OR slug); if they point at
// different rows, whichever the store finds first wins. Product has been
// flagged that this dual-criteria case is ambiguous on purpose.
type PostLookup struct {
	ID   *uint
	Slug *string
}

// Create validates the category and tag references, inserts the post row, and
// seeds the association set, all inside one transaction. Validation failures
// surface before any row is written, so a rejected create leaves nothing
// behind.
func (r *BlogPostRepo) Create(input models.CreateBlogPostInput) (*models.BlogPost, error) {
	var created models.BlogPost
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := validateReferences(tx, input.CategoryID, input.TagIDs); err != nil {
			return err
		}

		post := models.BlogPost{
			Slug:            input.Slug,
			Title:           input.Title,
			Content:         input.Content,
			Excerpt:         input.Excerpt,
			Published:       input.Published,
			PublicationDate: input.PublicationDate,
			CategoryID:      input.CategoryID,
			Author:          input.Author,
		}
		if err := tx.Create(&post).Error; err != nil {
			return translateWriteError(err, "blog_post", input.Slug)
		}

		if len(input.TagIDs) > 0 {
			if err := setInitialAssociations(tx, post.ID, input.TagIDs); err != nil {
				return err
			}
		}

		created = post
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.withTags(&created)
}

// Update applies a partial update: each field is touched only when present in
// the input, updated_at is refreshed unconditionally, and a supplied tag_ids
// (even an empty one) replaces the whole association set. Updating a missing
// post fails with NotFound.
func (r *BlogPostRepo) Update(input models.UpdateBlogPostInput) (*models.BlogPost, error) {
	var updated models.BlogPost
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.BlogPost
		if err := tx.First(&existing, input.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewBlogPostNotFound(input.ID)
			}
			return err
		}

		// Only a category being set to a concrete value needs validating;
		// clearing it (present-null) is always legal.
		var categoryID *uint
		if v, ok := input.CategoryID.Value(); ok {
			categoryID = &v
		}
		var tagIDs []uint
		if input.TagIDs.IsSet() {
			tagIDs = []uint{}
			if v, ok := input.TagIDs.Value(); ok {
				tagIDs = v
			}
		}
		if err := validateReferences(tx, categoryID, tagIDs); err != nil {
			return err
		}

		updates := map[string]any{"updated_at": time.Now()}
		slug := existing.Slug
		if v, ok := input.Slug.Value(); ok {
			updates["slug"] = v
			slug = v
		}
		if v, ok := input.Title.Value(); ok {
			updates["title"] = v
		}
		if v, ok := input.Content.Value(); ok {
			updates["content"] = v
		}
		if input.Excerpt.IsSet() {
			updates["excerpt"] = input.Excerpt.Ptr()
		}
		if v, ok := input.Published.Value(); ok {
			updates["published"] = v
		}
		if input.PublicationDate.IsSet() {
			updates["publication_date"] = input.PublicationDate.Ptr()
		}
		if input.CategoryID.IsSet() {
			updates["category_id"] = input.CategoryID.Ptr()
		}
		if v, ok := input.Author.Value(); ok {
			updates["author"] = v
		}

		if err := tx.Model(&models.BlogPost{}).Where("id = ?", input.ID).Updates(updates).Error; err != nil {
			return translateWriteError(err, "blog_post", slug)
		}

		if input.TagIDs.IsSet() {
			if err := replaceAssociations(tx, input.ID, tagIDs); err != nil {
				return err
			}
		}

		return tx.First(&updated, input.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return r.withTags(&updated)
}

// Delete removes a post and its association rows. Deleting a post that does
// not exist is a no-op reported as false.
func (r *BlogPostRepo) Delete(id uint) (bool, error) {
	var deleted bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteAssociationsByPost(tx, id); err != nil {
			return err
		}
		result := tx.Delete(&models.BlogPost{}, id)
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// Find is the public single-post accessor: it only ever sees published posts
// and returns nil (not an error) when no published match exists.
func (r *BlogPostRepo) Find(lookup PostLookup) (*models.BlogPost, error) {
	if lookup.ID == nil && lookup.Slug == nil {
		return nil, nil
	}

	query := r.db.Where("published = ?", true)
	switch {
	case lookup.ID != nil && lookup.Slug != nil:
		query = query.Where("id = ? OR slug = ?", *lookup.ID, *lookup.Slug)
	case lookup.ID != nil:
		query = query.Where("id = ?", *lookup.ID)
	default:
		query = query.Where("slug = ?", *lookup.Slug)
	}

	var post models.BlogPost
	err := query.First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.withTags(&post)
}

// FindAnyByID is the admin accessor: it ignores the published flag. It is a
// separate method rather than a bypass flag on Find so the public path can
// never be left open by mistake.
func (r *BlogPostRepo) FindAnyByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.withTags(&post)
}

// withTags loads the post's tag set from the association table.
func (r *BlogPostRepo) withTags(post *models.BlogPost) (*models.BlogPost, error) {
	byPost, err := tagsForPosts(r.db, []uint{post.ID})
	if err != nil {
		return nil, err
	}
	post.Tags = byPost[post.ID]
	if post.Tags == nil {
		post.Tags = []models.Tag{}
	}
	return post, nil
}
