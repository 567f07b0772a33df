package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mparedes/portfolio-backend/models"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// Add inserts a new blog into the database
func (r *BlogRepo) Add(blog *models.Blog) error {
	return r.db.Create(blog).Error
}

// FindByID returns a blog by id regardless of publication state
func (r *BlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindBySlug returns a blog by slug regardless of publication state.
// Used by the create path to detect slug collisions before inserting.
func (r *BlogRepo) FindBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindPublishedBySlug returns a published blog by slug, or nil
func (r *BlogRepo) FindPublishedBySlug(slug string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.First(&blog, "slug = ? AND is_published = true", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindAllPublished returns published blogs newest first
func (r *BlogRepo) FindAllPublished() ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.Where("is_published = true").Order("published_at DESC").Find(&blogs).Error
	return blogs, err
}

// FindFeatured returns the newest published+featured blogs up to limit
func (r *BlogRepo) FindFeatured(limit int) ([]models.Blog, error) {
	var blogs []models.Blog
	err := r.db.Where("is_featured = true AND is_published = true").
		Order("published_at DESC").
		Limit(limit).
		Find(&blogs).Error
	return blogs, err
}

// FindPublishedPage returns one page of published blogs newest first.
// Pages are 1-based; a page past the end yields an empty slice.
func (r *BlogRepo) FindPublishedPage(page, limit int) ([]models.Blog, error) {
	var blogs []models.Blog
	offset := (page - 1) * limit
	err := r.db.Where("is_published = true").
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&blogs).Error
	return blogs, err
}

// Update saves the full blog row
func (r *BlogRepo) Update(blog *models.Blog) error {
	return r.db.Save(blog).Error
}

// Delete removes a blog by id. Join rows in blog_tags are left in place;
// the returned count reflects the blogs table only.
func (r *BlogRepo) Delete(id uuid.UUID) (int64, error) {
	result := r.db.Delete(&models.Blog{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
