package database

import (
	"errors"
	"time"

	"github.com/quillstack/blog-backend/errs"
	"github.com/quillstack/blog-backend/models"
	"gorm.io/gorm"
)

type CategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepo {
	return &CategoryRepo{db}
}

// GetDB returns the underlying database connection for debugging purposes
func (r *CategoryRepo) GetDB() *gorm.DB {
	return r.db
}

// Create inserts a new category. A slug collision surfaces as DuplicateSlug.
func (r *CategoryRepo) Create(input models.CreateCategoryInput) (*models.Category, error) {
	category := models.Category{
		Slug:        input.Slug,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := r.db.Create(&category).Error; err != nil {
		return nil, translateWriteError(err, "category", input.Slug)
	}
	return &category, nil
}

// FindAll returns all categories from the database
func (r *CategoryRepo) FindAll() ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

// FindByID returns the category with the given id, or nil when none exists.
func (r *CategoryRepo) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindBySlug returns the category with the given slug, or nil when none exists.
func (r *CategoryRepo) FindBySlug(slug string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("slug = ?", slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// Update applies the supplied fields to an existing category. updated_at is
// refreshed even when no other field changed. A missing category fails with
// NotFound.
func (r *CategoryRepo) Update(input models.UpdateCategoryInput) (*models.Category, error) {
	var updated models.Category
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Category
		if err := tx.First(&existing, input.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewCategoryNotFound(input.ID)
			}
			return err
		}

		updates := map[string]any{"updated_at": time.Now()}
		slug := existing.Slug
		if v, ok := input.Slug.Value(); ok {
			updates["slug"] = v
			slug = v
		}
		if v, ok := input.Name.Value(); ok {
			updates["name"] = v
		}
		if input.Description.IsSet() {
			updates["description"] = input.Description.Ptr()
		}

		if err := tx.Model(&models.Category{}).Where("id = ?", input.ID).Updates(updates).Error; err != nil {
			return translateWriteError(err, "category", slug)
		}

		return tx.First(&updated, input.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a category. Posts referencing it keep their category_id; the
// reference simply dangles and reads treat it as uncategorized. Deleting a
// category that does not exist is a no-op reported as false.
func (r *CategoryRepo) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Category{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
