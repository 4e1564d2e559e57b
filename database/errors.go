package database

import (
	"errors"

	"github.com/quillstack/blog-backend/errs"
	"gorm.io/gorm"
)

// translateWriteError maps a GORM write failure onto the repository error
// taxonomy. Uniqueness violations can only come from the slug column, the one
// unique constraint every entity table carries.
func translateWriteError(err error, entity, slug string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewDuplicateSlug(entity, slug)
	}
	return err
}
