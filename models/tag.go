package models

import "github.com/google/uuid"

// Tag is a shared label attached to blogs and projects through join tables.
// Tags are created lazily: looked up by slug and reused when they exist.
type Tag struct {
	ID    uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug  string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_tags_slug"`
}
