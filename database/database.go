package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mparedes/portfolio-backend/models"
)

// AdminRepository is the persistence surface for admin accounts
type AdminRepository interface {
	Add(admin *models.Admin) error
	FindByID(id uuid.UUID) (*models.Admin, error)
	FindByEmail(email string) (*models.Admin, error)
	Update(admin *models.Admin) error
	Delete(id uuid.UUID) (int64, error)
}

// BlogRepository is the persistence surface for blogs
type BlogRepository interface {
	Add(blog *models.Blog) error
	FindByID(id uuid.UUID) (*models.Blog, error)
	FindBySlug(slug string) (*models.Blog, error)
	FindPublishedBySlug(slug string) (*models.Blog, error)
	FindAllPublished() ([]models.Blog, error)
	FindFeatured(limit int) ([]models.Blog, error)
	FindPublishedPage(page, limit int) ([]models.Blog, error)
	Update(blog *models.Blog) error
	Delete(id uuid.UUID) (int64, error)
}

// ProjectRepository is the persistence surface for projects
type ProjectRepository interface {
	Add(project *models.Project) error
	FindByID(id uuid.UUID) (*models.Project, error)
	FindPublishedByID(id uuid.UUID) (*models.Project, error)
	FindBySlug(slug string) (*models.Project, error)
	FindPublishedBySlug(slug string) (*models.Project, error)
	FindAllPublished() ([]models.Project, error)
	FindFeatured(limit int) ([]models.Project, error)
	Update(project *models.Project) error
	Delete(id uuid.UUID) (int64, error)
}

// TagRepository is the persistence surface for tags
type TagRepository interface {
	Add(tag *models.Tag) error
	FindByID(id uuid.UUID) (*models.Tag, error)
	FindByIDs(ids []uuid.UUID) ([]models.Tag, error)
	FindBySlug(slug string) (*models.Tag, error)
	FindAll() ([]models.Tag, error)
}

// BlogTagRepository is the persistence surface for blog-tag join rows
type BlogTagRepository interface {
	Add(blogTag *models.BlogTag) error
	FindByBlogID(blogID uuid.UUID) ([]models.BlogTag, error)
	FindByBlogIDs(blogIDs []uuid.UUID) ([]models.BlogTag, error)
	FindByTagID(tagID uuid.UUID) ([]models.BlogTag, error)
	Delete(blogID, tagID uuid.UUID) (int64, error)
	DistinctPublishedTags() ([]models.Tag, error)
}

// ProjectTagRepository is the persistence surface for project-tag join rows
type ProjectTagRepository interface {
	Add(projectTag *models.ProjectTag) error
	FindByProjectID(projectID uuid.UUID) ([]models.ProjectTag, error)
	FindByProjectIDs(projectIDs []uuid.UUID) ([]models.ProjectTag, error)
	FindByTagID(tagID uuid.UUID) ([]models.ProjectTag, error)
	Delete(projectID, tagID uuid.UUID) (int64, error)
}

// ContactRepository is the persistence surface for contact profiles
type ContactRepository interface {
	Add(contact *models.Contact) error
	FindAll() ([]models.Contact, error)
	FindByID(id uuid.UUID) (*models.Contact, error)
	Update(contact *models.Contact) error
	Delete(id uuid.UUID) (int64, error)
}

// Store bundles every repository plus transactional execution. Services
// depend on this interface so tests can swap in fakes.
type Store interface {
	AdminRepo() AdminRepository
	BlogRepo() BlogRepository
	ProjectRepo() ProjectRepository
	TagRepo() TagRepository
	BlogTagRepo() BlogTagRepository
	ProjectTagRepo() ProjectTagRepository
	ContactRepo() ContactRepository

	// Transaction runs fn against a Store bound to a single database
	// transaction. Any error rolls the whole transaction back.
	Transaction(fn func(Store) error) error
}

type Database struct {
	db             *gorm.DB
	adminRepo      *AdminRepo
	blogRepo       *BlogRepo
	projectRepo    *ProjectRepo
	tagRepo        *TagRepo
	blogTagRepo    *BlogTagRepo
	projectTagRepo *ProjectTagRepo
	contactRepo    *ContactRepo
}

// New initializes a Database with each repository using a shared GORM instance
func New(db *gorm.DB) Database {
	return Database{
		db:             db,
		adminRepo:      NewAdminRepo(db),
		blogRepo:       NewBlogRepo(db),
		projectRepo:    NewProjectRepo(db),
		tagRepo:        NewTagRepo(db),
		blogTagRepo:    NewBlogTagRepo(db),
		projectTagRepo: NewProjectTagRepo(db),
		contactRepo:    NewContactRepo(db),
	}
}

// Migrate creates or updates the schema for every entity
func (d Database) Migrate() error {
	return d.db.AutoMigrate(
		&models.Admin{},
		&models.Blog{},
		&models.Project{},
		&models.Tag{},
		&models.BlogTag{},
		&models.ProjectTag{},
		&models.Contact{},
	)
}

func (d Database) AdminRepo() AdminRepository {
	return d.adminRepo
}

func (d Database) BlogRepo() BlogRepository {
	return d.blogRepo
}

func (d Database) ProjectRepo() ProjectRepository {
	return d.projectRepo
}

func (d Database) TagRepo() TagRepository {
	return d.tagRepo
}

func (d Database) BlogTagRepo() BlogTagRepository {
	return d.blogTagRepo
}

func (d Database) ProjectTagRepo() ProjectTagRepository {
	return d.projectTagRepo
}

func (d Database) ContactRepo() ContactRepository {
	return d.contactRepo
}

func (d Database) Transaction(fn func(Store) error) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
