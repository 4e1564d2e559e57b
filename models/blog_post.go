package models

import "time"

// BlogPost represents a complete blog post with metadata.
//
// CategoryID is a weak reference: it is validated against the categories table
// at write time but carries no foreign-key constraint, so it may dangle after
// the category is deleted. Readers treat a dangling value as "uncategorized".
type BlogPost struct {
	ID              uint       `json:"id" db:"id" gorm:"primaryKey"`
	Slug            string     `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Title           string     `json:"title" db:"title" gorm:"type:text;not null"`
	Content         string     `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt         *string    `json:"excerpt" db:"excerpt" gorm:"type:text"`
	Published       bool       `json:"published" db:"published" gorm:"not null;default:false"`
	PublicationDate *time.Time `json:"publication_date" db:"publication_date" gorm:"type:timestamp"`
	CategoryID      *uint      `json:"category_id" db:"category_id" gorm:"index"`
	Author          string     `json:"author" db:"author" gorm:"type:text;not null"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at" gorm:"not null;index"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at" gorm:"not null"`

	// Tags is loaded by the repository from the association table; it is not a
	// GORM-managed relation.
	Tags []Tag `json:"tags" gorm:"-"`
}
