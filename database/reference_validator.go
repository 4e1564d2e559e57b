package database

import (
	"errors"

	"github.com/quillstack/blog-backend/errs"
	"github.com/quillstack/blog-backend/models"
	"gorm.io/gorm"
)

// validateReferences confirms that the category id (when non-nil) and every
// tag id exist before a post write proceeds. A nil tagIDs slice skips tag
// validation entirely; an empty non-nil slice validates trivially. Missing tag
// ids are reported sorted ascending so the error message is stable.
//
// The check runs against whatever handle the caller passes; post mutations
// pass their transaction so check and write see the same snapshot.
func validateReferences(db *gorm.DB, categoryID *uint, tagIDs []uint) error {
	if categoryID != nil {
		var category models.Category
		err := db.First(&category, *categoryID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewDanglingCategoryReference(*categoryID)
		}
		if err != nil {
			return err
		}
	}

	if tagIDs == nil {
		return nil
	}

	wanted := dedupeIDs(tagIDs)
	if len(wanted) == 0 {
		return nil
	}

	var found []uint
	if err := db.Model(&models.Tag{}).Where("id IN ?", wanted).Pluck("id", &found).Error; err != nil {
		return err
	}

	foundSet := make(map[uint]struct{}, len(found))
	for _, id := range found {
		foundSet[id] = struct{}{}
	}

	var missing []uint
	for _, id := range wanted {
		if _, ok := foundSet[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return errs.NewDanglingTagReference(missing)
	}
	return nil
}
