package models

import "time"

// Tag is a label attachable to any number of blog posts.
type Tag struct {
	ID        uint      `json:"id" db:"id" gorm:"primaryKey"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" db:"created_at" gorm:"not null"`
}
