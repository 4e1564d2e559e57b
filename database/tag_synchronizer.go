package database

import "gorm.io/gorm"

// Association reconciliation for a post's tag set. Both modes leave the
// stored rows in exact 1:1 correspondence with the desired id set.

// replaceAssociations is the full-replace mode used by update when tag_ids is
// explicitly supplied: drop every existing row for the post, then reinsert the
// desired set.
func replaceAssociations(db *gorm.DB, postID uint, tagIDs []uint) error {
	if err := deleteAssociationsByPost(db, postID); err != nil {
		return err
	}
	return insertAssociations(db, postID, tagIDs)
}

// setInitialAssociations is the create-time mode: no prior rows can exist, so
// the desired set is inserted directly.
func setInitialAssociations(db *gorm.DB, postID uint, tagIDs []uint) error {
	return insertAssociations(db, postID, tagIDs)
}
