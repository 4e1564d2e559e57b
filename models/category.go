package models

import "time"

// Category groups blog posts. Posts reference a category through a plain
// nullable column; deleting a category never touches the posts that point at it.
type Category struct {
	ID          uint      `json:"id" db:"id" gorm:"primaryKey"`
	Slug        string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Description *string   `json:"description" db:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" gorm:"not null"`
}
