package errs

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// Content-repository sentinel errors
var (
	ErrDuplicateSlug             = errors.New("duplicate slug")
	ErrDanglingCategoryReference = errors.New("referenced category does not exist")
	ErrDanglingTagReference      = errors.New("referenced tags do not exist")
)

// NewCategoryNotFound reports an update or delete aimed at a category id that
// has no row.
func NewCategoryNotFound(id uint) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("category %w", ErrNotFound),
		Details:    fmt.Sprintf("No category exists with id %d", id),
		Field:      "id",
	}
}

// NewTagNotFound reports an operation aimed at a tag id that has no row.
func NewTagNotFound(id uint) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("tag %w", ErrNotFound),
		Details:    fmt.Sprintf("No tag exists with id %d", id),
		Field:      "id",
	}
}

// NewBlogPostNotFound reports an update aimed at a post id that has no row.
func NewBlogPostNotFound(id uint) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("blog post %w", ErrNotFound),
		Details:    fmt.Sprintf("No blog post exists with id %d", id),
		Field:      "id",
	}
}

// NewDuplicateSlug reports a uniqueness violation on an entity's slug column.
func NewDuplicateSlug(entity, slug string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        ErrDuplicateSlug,
		Details:    fmt.Sprintf("A %s with slug %q already exists", entity, slug),
		Field:      "slug",
	}
}

// NewDanglingCategoryReference reports a post write naming a category id with
// no backing row.
func NewDanglingCategoryReference(id uint) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrDanglingCategoryReference,
		Details:    fmt.Sprintf("Category %d does not exist", id),
		Field:      "category_id",
	}
}

// NewDanglingTagReference reports a post write naming tag ids with no backing
// rows. The missing ids are listed sorted ascending so the message is stable
// across runs.
func NewDanglingTagReference(missing []uint) *ApiErr {
	ids := make([]uint, len(missing))
	copy(ids, missing)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        ErrDanglingTagReference,
		Details:    fmt.Sprintf("Tags do not exist: %s", strings.Join(parts, ", ")),
		Field:      "tag_ids",
	}
}

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil {
		errStr := cause.Error()
		switch {
		case strings.Contains(errStr, "duplicate key"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s already exists", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "not found"):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s not found", entity),
				Details:    details,
				Cause:      cause,
			}
		case strings.Contains(errStr, "connection"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    "Unable to connect to database",
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

// Content-repository error type checkers
func IsDuplicateSlugError(err error) bool {
	return errors.Is(err, ErrDuplicateSlug)
}

func IsDanglingCategoryReferenceError(err error) bool {
	return errors.Is(err, ErrDanglingCategoryReference)
}

func IsDanglingTagReferenceError(err error) bool {
	return errors.Is(err, ErrDanglingTagReference)
}
