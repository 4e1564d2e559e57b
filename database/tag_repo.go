package database

import (
	"errors"

	"github.com/quillstack/blog-backend/errs"
	"github.com/quillstack/blog-backend/models"
	"gorm.io/gorm"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *TagRepo) GetDB() *gorm.DB {
	return r.db
}

// Create inserts a new tag. A slug collision surfaces as DuplicateSlug.
func (r *TagRepo) Create(input models.CreateTagInput) (*models.Tag, error) {
	tag := models.Tag{
		Slug: input.Slug,
		Name: input.Name,
	}
	if err := r.db.Create(&tag).Error; err != nil {
		return nil, translateWriteError(err, "tag", input.Slug)
	}
	return &tag, nil
}

// FindAll returns all tags from the database
func (r *TagRepo) FindAll() ([]*models.Tag, error) {
	var tags []*models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}

// FindByID returns the tag with the given id, or nil when none exists.
func (r *TagRepo) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// FindBySlug returns the tag with the given slug, or nil when none exists.
func (r *TagRepo) FindBySlug(slug string) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.Where("slug = ?", slug).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

// Update applies the supplied fields to an existing tag. A missing tag fails
// with NotFound.
func (r *TagRepo) Update(input models.UpdateTagInput) (*models.Tag, error) {
	var updated models.Tag
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Tag
		if err := tx.First(&existing, input.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewTagNotFound(input.ID)
			}
			return err
		}

		updates := map[string]any{}
		slug := existing.Slug
		if v, ok := input.Slug.Value(); ok {
			updates["slug"] = v
			slug = v
		}
		if v, ok := input.Name.Value(); ok {
			updates["name"] = v
		}
		if len(updates) > 0 {
			if err := tx.Model(&models.Tag{}).Where("id = ?", input.ID).Updates(updates).Error; err != nil {
				return translateWriteError(err, "tag", slug)
			}
		}

		return tx.First(&updated, input.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a tag and every association row pointing at it, in one
// transaction so a failure leaves neither half applied. Unlike category and
// post deletes, deleting a missing tag is an error, not a silent no-op.
func (r *TagRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var tag models.Tag
		if err := tx.First(&tag, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewTagNotFound(id)
			}
			return err
		}

		if err := tx.Where("tag_id = ?", id).Delete(&models.BlogPostTag{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Tag{}, id).Error
	})
}
