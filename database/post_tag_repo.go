package database

import (
	"sort"

	"github.com/quillstack/blog-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Association-row store for the blog_post_tags table. The functions here take
// the database handle as an argument so the callers can pass a transaction.

// insertAssociations bulk-inserts one association row per tag id. Duplicate
// ids in the input collapse to one row, and rows that already exist are left
// alone (ON CONFLICT DO NOTHING), so the insert is retry-safe.
func insertAssociations(db *gorm.DB, postID uint, tagIDs []uint) error {
	ids := dedupeIDs(tagIDs)
	if len(ids) == 0 {
		return nil
	}

	rows := make([]models.BlogPostTag, 0, len(ids))
	for _, tagID := range ids {
		rows = append(rows, models.BlogPostTag{BlogPostID: postID, TagID: tagID})
	}

	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// deleteAssociationsByPost removes every association row owned by the post.
func deleteAssociationsByPost(db *gorm.DB, postID uint) error {
	return db.Where("blog_post_id = ?", postID).Delete(&models.BlogPostTag{}).Error
}

// tagsForPosts loads the tags of every listed post in two batch queries and
// returns them keyed by post id.
func tagsForPosts(db *gorm.DB, postIDs []uint) (map[uint][]models.Tag, error) {
	byPost := make(map[uint][]models.Tag, len(postIDs))
	if len(postIDs) == 0 {
		return byPost, nil
	}

	var rows []models.BlogPostTag
	if err := db.Where("blog_post_id IN ?", postIDs).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return byPost, nil
	}

	tagIDs := make([]uint, 0, len(rows))
	for _, row := range rows {
		tagIDs = append(tagIDs, row.TagID)
	}

	var tags []models.Tag
	if err := db.Where("id IN ?", dedupeIDs(tagIDs)).Find(&tags).Error; err != nil {
		return nil, err
	}
	tagByID := make(map[uint]models.Tag, len(tags))
	for _, tag := range tags {
		tagByID[tag.ID] = tag
	}

	for _, row := range rows {
		// A tag deleted out from under a stale association row is skipped
		// rather than surfaced; the association is dangling, not the read.
		if tag, ok := tagByID[row.TagID]; ok {
			byPost[row.BlogPostID] = append(byPost[row.BlogPostID], tag)
		}
	}
	return byPost, nil
}

// dedupeIDs returns the ids with duplicates dropped, sorted ascending.
func dedupeIDs(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
