package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mparedes/portfolio-backend/models"
)

type ProjectTagRepo struct {
	db *gorm.DB
}

func NewProjectTagRepo(db *gorm.DB) *ProjectTagRepo {
	return &ProjectTagRepo{db}
}

// Add inserts a new project-tag join row
func (r *ProjectTagRepo) Add(projectTag *models.ProjectTag) error {
	return r.db.Create(projectTag).Error
}

// FindByProjectID returns the join rows for one project
func (r *ProjectTagRepo) FindByProjectID(projectID uuid.UUID) ([]models.ProjectTag, error) {
	var projectTags []models.ProjectTag
	err := r.db.Where("project_id = ?", projectID).Find(&projectTags).Error
	return projectTags, err
}

// FindByProjectIDs returns the join rows for a batch of projects in one query
func (r *ProjectTagRepo) FindByProjectIDs(projectIDs []uuid.UUID) ([]models.ProjectTag, error) {
	if len(projectIDs) == 0 {
		return nil, nil
	}
	var projectTags []models.ProjectTag
	err := r.db.Where("project_id IN ?", projectIDs).Find(&projectTags).Error
	return projectTags, err
}

// FindByTagID returns the join rows referencing one tag
func (r *ProjectTagRepo) FindByTagID(tagID uuid.UUID) ([]models.ProjectTag, error) {
	var projectTags []models.ProjectTag
	err := r.db.Where("tag_id = ?", tagID).Find(&projectTags).Error
	return projectTags, err
}

// Delete removes the join row for (projectID, tagID)
func (r *ProjectTagRepo) Delete(projectID, tagID uuid.UUID) (int64, error) {
	result := r.db.Where("project_id = ? AND tag_id = ?", projectID, tagID).Delete(&models.ProjectTag{})
	return result.RowsAffected, result.Error
}
