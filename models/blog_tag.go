package models

import "github.com/google/uuid"

// BlogTag is a join row linking a blog to a tag. Deleting a blog does not
// cascade here; stale join rows are tolerated.
type BlogTag struct {
	BlogID uuid.UUID `json:"blogId" db:"blog_id" gorm:"type:uuid;primaryKey;index:idx_blog_tags_blog_id"`
	TagID  uuid.UUID `json:"tagId" db:"tag_id" gorm:"type:uuid;primaryKey;index:idx_blog_tags_tag_id"`
}
