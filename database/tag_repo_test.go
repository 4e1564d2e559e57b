package database

import (
	"testing"

	"github.com/quillstack/blog-backend/errs"
	"github.com/quillstack/blog-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRepoCreate(t *testing.T) {
	t.Run("persists slug and name", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTagRepo(db)

		tag, err := repo.Create(models.CreateTagInput{Slug: "golang", Name: "Golang"})
		require.NoError(t, err)
		require.NotZero(t, tag.ID)
		assert.Equal(t, "golang", tag.Slug)
		assert.Equal(t, "Golang", tag.Name)
		assert.False(t, tag.CreatedAt.IsZero())
	})

	t.Run("duplicate slug is rejected", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTagRepo(db)

		_, err := repo.Create(models.CreateTagInput{Slug: "dup", Name: "one"})
		require.NoError(t, err)

		_, err = repo.Create(models.CreateTagInput{Slug: "dup", Name: "two"})
		require.Error(t, err)
		assert.True(t, errs.IsDuplicateSlugError(err))
	})
}

func TestTagRepoFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepo(db)
	tag := seedTag(t, db, "findable")

	byID, err := repo.FindByID(tag.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, tag.ID, byID.ID)

	bySlug, err := repo.FindBySlug("findable")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, tag.ID, bySlug.ID)

	missing, err := repo.FindByID(999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = repo.FindBySlug("missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTagRepoFindAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewTagRepo(db)
	require.NoError(t, db.Create(&models.Tag{Slug: "b", Name: "beta"}).Error)
	require.NoError(t, db.Create(&models.Tag{Slug: "a", Name: "alpha"}).Error)

	tags, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "alpha", tags[0].Name)
	assert.Equal(t, "beta", tags[1].Name)
}

func TestTagRepoUpdate(t *testing.T) {
	t.Run("applies supplied fields only", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTagRepo(db)
		tag := seedTag(t, db, "before")

		updated, err := repo.Update(models.UpdateTagInput{
			ID:   tag.ID,
			Name: models.Set("After"),
		})
		require.NoError(t, err)
		assert.Equal(t, "After", updated.Name)
		assert.Equal(t, "before", updated.Slug)
	})

	t.Run("missing tag fails with NotFound", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTagRepo(db)

		_, err := repo.Update(models.UpdateTagInput{ID: 404, Name: models.Set("x")})
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("slug collision on update is rejected", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTagRepo(db)
		seedTag(t, db, "taken")
		tag := seedTag(t, db, "mine")

		_, err := repo.Update(models.UpdateTagInput{ID: tag.ID, Slug: models.Set("taken")})
		require.Error(t, err)
		assert.True(t, errs.IsDuplicateSlugError(err))
	})
}

func TestTagRepoDelete(t *testing.T) {
	t.Run("cascades to association rows and spares the posts", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTagRepo(db)
		tag := seedTag(t, db, "doomed")
		other := seedTag(t, db, "survivor")
		postA := seedPost(t, db, "a", true, at(0))
		postB := seedPost(t, db, "b", true, at(1))
		attachTag(t, db, postA.ID, tag.ID)
		attachTag(t, db, postB.ID, tag.ID)
		attachTag(t, db, postA.ID, other.ID)

		require.NoError(t, repo.Delete(tag.ID))

		assert.EqualValues(t, 1, countRows(t, db, &models.Tag{}))
		assert.EqualValues(t, 1, countRows(t, db, &models.BlogPostTag{}))
		assert.EqualValues(t, 2, countRows(t, db, &models.BlogPost{}))

		// The surviving association still resolves.
		found, err := NewBlogPostRepo(db).Find(PostLookup{ID: &postA.ID})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, []uint{other.ID}, tagIDsOf(found))
	})

	t.Run("deleting a missing tag is an error, not a no-op", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewTagRepo(db)

		err := repo.Delete(777)
		require.Error(t, err)
		assert.True(t, errs.IsNotFound(err))
	})
}
