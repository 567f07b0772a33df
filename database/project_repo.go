package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mparedes/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID returns a project by id regardless of publication state
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindPublishedByID returns a published project by id, or nil
func (r *ProjectRepo) FindPublishedByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ? AND is_published = true", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug returns a project by slug regardless of publication state
func (r *ProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindPublishedBySlug returns a published project by slug, or nil
func (r *ProjectRepo) FindPublishedBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "slug = ? AND is_published = true", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindAllPublished returns published projects newest first
func (r *ProjectRepo) FindAllPublished() ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("is_published = true").Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// FindFeatured returns the newest published+featured projects up to limit
func (r *ProjectRepo) FindFeatured(limit int) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("is_featured = true AND is_published = true").
		Order("created_at DESC").
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// Update saves the full project row
func (r *ProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project by id and reports how many rows were removed
func (r *ProjectRepo) Delete(id uuid.UUID) (int64, error) {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
