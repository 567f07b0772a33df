package models

import "github.com/google/uuid"

// ProjectTag is a join row linking a project to a tag
type ProjectTag struct {
	ProjectID uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;primaryKey;index:idx_project_tags_project_id"`
	TagID     uuid.UUID `json:"tagId" db:"tag_id" gorm:"type:uuid;primaryKey;index:idx_project_tags_tag_id"`
}
