package database

import (
	"testing"

	"github.com/quillstack/blog-backend/errs"
	"github.com/quillstack/blog-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepoCreate(t *testing.T) {
	t.Run("persists fields and an optional description", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepo(db)

		category, err := repo.Create(models.CreateCategoryInput{
			Slug:        "essays",
			Name:        "Essays",
			Description: strPtr("Long-form writing"),
		})
		require.NoError(t, err)
		require.NotZero(t, category.ID)
		assert.Equal(t, "essays", category.Slug)
		assert.Equal(t, "Essays", category.Name)
		require.NotNil(t, category.Description)
		assert.Equal(t, "Long-form writing", *category.Description)

		bare, err := repo.Create(models.CreateCategoryInput{Slug: "notes", Name: "Notes"})
		require.NoError(t, err)
		assert.Nil(t, bare.Description)
	})

	t.Run("duplicate slug is rejected", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepo(db)

		_, err := repo.Create(models.CreateCategoryInput{Slug: "dup", Name: "one"})
		require.NoError(t, err)

		_, err = repo.Create(models.CreateCategoryInput{Slug: "dup", Name: "two"})
		require.Error(t, err)
		assert.True(t, errs.IsDuplicateSlugError(err))
	})
}

func TestCategoryRepoFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepo(db)
	category := seedCategory(t, db, "findable")

	byID, err := repo.FindByID(category.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, category.ID, byID.ID)

	bySlug, err := repo.FindBySlug("findable")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, category.ID, bySlug.ID)

	missing, err := repo.FindByID(999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCategoryRepoFindAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepo(db)
	require.NoError(t, db.Create(&models.Category{Slug: "b", Name: "beta"}).Error)
	require.NoError(t, db.Create(&models.Category{Slug: "a", Name: "alpha"}).Error)

	categories, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "alpha", categories[0].Name)
	assert.Equal(t, "beta", categories[1].Name)
}

func TestCategoryRepoUpdate(t *testing.T) {
	t.Run("applies supplied fields and refreshes updated_at", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepo(db)
		category := seedCategory(t, db, "stable")

		updated, err := repo.Update(models.UpdateCategoryInput{
			ID:   category.ID,
			Name: models.Set("Renamed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, "stable", updated.Slug)
		assert.True(t, updated.UpdatedAt.After(category.UpdatedAt) || updated.UpdatedAt.Equal(category.UpdatedAt))
	})

	t.Run("present-null clears the description", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepo(db)

		category, err := repo.Create(models.CreateCategoryInput{
			Slug:        "clearable",
			Name:        "Clearable",
			Description: strPtr("about to go"),
		})
		require.NoError(t, err)

		updated, err := repo.Update(models.UpdateCategoryInput{
			ID:          category.ID,
			Description: models.Null[string](),
		})
		require.NoError(t, err)
		assert.Nil(t, updated.Description)

		// An absent description survives an unrelated update.
		updated, err = repo.Update(models.UpdateCategoryInput{
			ID:          category.ID,
			Description: models.Set("back again"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Description)

		updated, err = repo.Update(models.UpdateCategoryInput{
			ID:   category.ID,
			Name: models.Set("Untouched description"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "back again", *updated.Description)
	})

	t.Run("missing category fails with NotFound", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepo(db)

		_, err := repo.Update(models.UpdateCategoryInput{ID: 404, Name: models.Set("x")})
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})
}

func TestCategoryRepoDelete(t *testing.T) {
	t.Run("reports whether a row was removed", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepo(db)
		category := seedCategory(t, db, "doomed")

		deleted, err := repo.Delete(category.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(category.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("referencing posts keep their category_id", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewCategoryRepo(db)
		category := seedCategory(t, db, "doomed")
		post := seedPost(t, db, "orphaned", true, at(0))
		require.NoError(t, db.Model(post).Update("category_id", category.ID).Error)

		deleted, err := repo.Delete(category.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		var reloaded models.BlogPost
		require.NoError(t, db.First(&reloaded, post.ID).Error)
		require.NotNil(t, reloaded.CategoryID)
		assert.Equal(t, category.ID, *reloaded.CategoryID)
	})
}
