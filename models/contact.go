package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact holds the admin's public contact profile shown on the site
type Contact struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	AdminID     uuid.UUID `json:"adminId" db:"admin_id" gorm:"type:uuid;not null;index:idx_contacts_admin_id"`
	FirstName   string    `json:"firstName" db:"first_name" gorm:"type:text;not null"`
	LastName    string    `json:"lastName" db:"last_name" gorm:"type:text"`
	Avatar      string    `json:"avatar" db:"avatar" gorm:"type:text"`
	Address     string    `json:"address" db:"address" gorm:"type:text"`
	GithubURL   string    `json:"githubUrl" db:"github_url" gorm:"type:text"`
	LinkedinURL string    `json:"linkedinUrl" db:"linkedin_url" gorm:"type:text"`
	TwitterURL  string    `json:"twitterUrl" db:"twitter_url" gorm:"type:text"`
	Phone       string    `json:"phone" db:"phone" gorm:"type:text"`
	Email       string    `json:"email" db:"email" gorm:"type:text"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP"`
}
