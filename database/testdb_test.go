package database

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/quillstack/blog-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the full schema. The
// connection pool is pinned to one connection so every query sees the same
// in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Slug: slug, Name: slug}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedTag(t *testing.T, db *gorm.DB, slug string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Slug: slug, Name: slug}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

// seedPost inserts a post with an explicit created_at so listing order is
// under the test's control.
func seedPost(t *testing.T, db *gorm.DB, slug string, published bool, createdAt time.Time) *models.BlogPost {
	t.Helper()
	post := &models.BlogPost{
		Slug:      slug,
		Title:     "title " + slug,
		Content:   "content " + slug,
		Published: published,
		Author:    "tester",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func attachTag(t *testing.T, db *gorm.DB, postID, tagID uint) {
	t.Helper()
	require.NoError(t, db.Create(&models.BlogPostTag{BlogPostID: postID, TagID: tagID}).Error)
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func tagIDsOf(post *models.BlogPost) []uint {
	ids := make([]uint, 0, len(post.Tags))
	for _, tag := range post.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

// at returns a fixed base time shifted by n seconds, keeping created_at values
// distinct and ordered within a test.
func at(n int) time.Time {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(n) * time.Second)
}

func uintPtr(v uint) *uint { return &v }

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }
