package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project with publication metadata
type Project struct {
	ID              uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	AdminID         uuid.UUID `json:"adminId" db:"admin_id" gorm:"type:uuid;not null;index:idx_projects_admin_id"`
	Title           string    `json:"title" db:"title" gorm:"type:text;not null"`
	Slug            string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_projects_slug"`
	MetaDescription string    `json:"metaDescription" db:"meta_description" gorm:"type:text"`
	Description     string    `json:"description" db:"description" gorm:"type:text;not null"`
	IsPublished     bool      `json:"isPublished" db:"is_published" gorm:"type:boolean;not null;default:false"`
	PublishedAt     time.Time `json:"publishedAt" db:"published_at" gorm:"type:timestamp"`
	IsFeatured      bool      `json:"isFeatured" db:"is_featured" gorm:"type:boolean;not null;default:false"`
	Media           string    `json:"media" db:"media" gorm:"type:text"`
	GithubURL       string    `json:"githubUrl" db:"github_url" gorm:"type:text"`
	LiveDemoURL     string    `json:"liveDemoUrl" db:"live_demo_url" gorm:"type:text"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`

	// Tags are resolved through the project_tags join table, not by the ORM.
	Tags []Tag `json:"tags" gorm:"-"`
}
