package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mparedes/portfolio-backend/models"
)

type BlogTagRepo struct {
	db *gorm.DB
}

func NewBlogTagRepo(db *gorm.DB) *BlogTagRepo {
	return &BlogTagRepo{db}
}

// Add inserts a new blog-tag join row
func (r *BlogTagRepo) Add(blogTag *models.BlogTag) error {
	return r.db.Create(blogTag).Error
}

// FindByBlogID returns the join rows for one blog
func (r *BlogTagRepo) FindByBlogID(blogID uuid.UUID) ([]models.BlogTag, error) {
	var blogTags []models.BlogTag
	err := r.db.Where("blog_id = ?", blogID).Find(&blogTags).Error
	return blogTags, err
}

// FindByBlogIDs returns the join rows for a batch of blogs in one query
func (r *BlogTagRepo) FindByBlogIDs(blogIDs []uuid.UUID) ([]models.BlogTag, error) {
	if len(blogIDs) == 0 {
		return nil, nil
	}
	var blogTags []models.BlogTag
	err := r.db.Where("blog_id IN ?", blogIDs).Find(&blogTags).Error
	return blogTags, err
}

// FindByTagID returns the join rows referencing one tag
func (r *BlogTagRepo) FindByTagID(tagID uuid.UUID) ([]models.BlogTag, error) {
	var blogTags []models.BlogTag
	err := r.db.Where("tag_id = ?", tagID).Find(&blogTags).Error
	return blogTags, err
}

// Delete removes the join row for (blogID, tagID)
func (r *BlogTagRepo) Delete(blogID, tagID uuid.UUID) (int64, error) {
	result := r.db.Where("blog_id = ? AND tag_id = ?", blogID, tagID).Delete(&models.BlogTag{})
	return result.RowsAffected, result.Error
}

// DistinctPublishedTags returns every tag attached to at least one
// published blog, without duplicates
func (r *BlogTagRepo) DistinctPublishedTags() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.
		Distinct("tags.id", "tags.title", "tags.slug").
		Table("blog_tags").
		Joins("JOIN tags ON blog_tags.tag_id = tags.id").
		Joins("JOIN blogs ON blog_tags.blog_id = blogs.id").
		Where("blogs.is_published = true").
		Find(&tags).Error
	return tags, err
}
