package models

import (
	"time"

	"github.com/google/uuid"
)

// Blog represents a blog post with publication metadata
type Blog struct {
	ID              uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	AdminID         uuid.UUID `json:"adminId" db:"admin_id" gorm:"type:uuid;not null;index:idx_blogs_admin_id"`
	Title           string    `json:"title" db:"title" gorm:"type:text;not null"`
	MetaDescription string    `json:"metaDescription" db:"meta_description" gorm:"type:text"`
	Body            string    `json:"body" db:"body" gorm:"type:text;not null"`
	CoverImage      string    `json:"coverImage" db:"cover_image" gorm:"type:text"`
	IsPublished     bool      `json:"isPublished" db:"is_published" gorm:"type:boolean;not null;default:false"`
	PublishedAt     time.Time `json:"publishedAt" db:"published_at" gorm:"type:timestamp"`
	IsFeatured      bool      `json:"isFeatured" db:"is_featured" gorm:"type:boolean;not null;default:false"`
	Slug            string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_blogs_slug"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	// Tags are resolved through the blog_tags join table, not by the ORM.
	Tags []Tag `json:"tags" gorm:"-"`
}
