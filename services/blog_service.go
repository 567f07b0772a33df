package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/mparedes/portfolio-backend/database"
	"github.com/mparedes/portfolio-backend/errs"
	"github.com/mparedes/portfolio-backend/models"
)

// featuredLimit caps the featured listings for blogs and projects
const featuredLimit = 3

// BlogInput is the request payload for creating a blog. Tags arrive as
// plain titles and are resolved to tag rows during creation.
type BlogInput struct {
	AdminID         uuid.UUID `json:"adminId"`
	Title           string    `json:"title"`
	MetaDescription string    `json:"metaDescription"`
	Body            string    `json:"body"`
	CoverImage      string    `json:"coverImage"`
	IsPublished     bool      `json:"isPublished"`
	PublishedAt     time.Time `json:"publishedAt"`
	IsFeatured      bool      `json:"isFeatured"`
	Tags            []string  `json:"tags"`
}

type BlogService struct {
	store database.Store
}

func NewBlogService(store database.Store) *BlogService {
	return &BlogService{store: store}
}

// Create inserts a blog with a slug derived from its title. A slug already
// in use rejects the request with a conflict; the unique index on the slug
// column backstops the window between the lookup and the insert. The blog
// row, lazily created tags, and join rows commit in one transaction.
func (s *BlogService) Create(input BlogInput) (*models.Blog, error) {
	if input.Title == "" {
		return nil, errs.NewBadRequestErrorWithField("missing required field", "title", "title is required")
	}
	if input.Body == "" {
		return nil, errs.NewBadRequestErrorWithField("missing required field", "body", "body is required")
	}

	blogSlug := makeSlug(input.Title)
	existing, err := s.store.BlogRepo().FindBySlug(blogSlug)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog", err)
	}
	if existing != nil {
		return nil, errs.NewAlreadyExists("blog")
	}

	publishedAt := input.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}

	blog := models.Blog{
		ID:              uuid.New(),
		AdminID:         input.AdminID,
		Title:           input.Title,
		MetaDescription: input.MetaDescription,
		Body:            input.Body,
		CoverImage:      input.CoverImage,
		IsPublished:     input.IsPublished,
		PublishedAt:     publishedAt,
		IsFeatured:      input.IsFeatured,
		Slug:            blogSlug,
		Tags:            []models.Tag{},
	}

	err = s.store.Transaction(func(tx database.Store) error {
		if err := tx.BlogRepo().Add(&blog); err != nil {
			return errs.NewDatabaseError("create", "blog", err)
		}
		tags, err := resolveTags(tx, input.Tags)
		if err != nil {
			return err
		}
		for _, tag := range tags {
			join := models.BlogTag{BlogID: blog.ID, TagID: tag.ID}
			if err := tx.BlogTagRepo().Add(&join); err != nil {
				return errs.NewDatabaseError("create", "blog tag", err)
			}
		}
		blog.Tags = tags
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &blog, nil
}

// GetAll returns published blogs newest first with their tags attached
func (s *BlogService) GetAll() ([]models.Blog, error) {
	blogs, err := s.store.BlogRepo().FindAllPublished()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blogs", err)
	}
	return s.attachTags(blogs)
}

// GetBySlug returns a published blog by slug with its tags attached
func (s *BlogService) GetBySlug(slug string) (*models.Blog, error) {
	blog, err := s.store.BlogRepo().FindPublishedBySlug(slug)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog", err)
	}
	if blog == nil {
		return nil, errs.NewNotFound("blog")
	}
	attached, err := s.attachTags([]models.Blog{*blog})
	if err != nil {
		return nil, err
	}
	return &attached[0], nil
}

// GetFeatured returns up to 3 published, featured blogs newest first
func (s *BlogService) GetFeatured() ([]models.Blog, error) {
	blogs, err := s.store.BlogRepo().FindFeatured(featuredLimit)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "featured blogs", err)
	}
	return s.attachTags(blogs)
}

// GetPage returns one page of published blogs. Pages are 1-based and a page
// past the end yields an empty list rather than an error.
func (s *BlogService) GetPage(page, limit int) ([]models.Blog, error) {
	if page < 1 {
		return nil, errs.NewBadRequestErrorWithField("invalid field", "page", "page must be at least 1")
	}
	if limit < 1 {
		return nil, errs.NewBadRequestErrorWithField("invalid field", "limit", "limit must be at least 1")
	}
	blogs, err := s.store.BlogRepo().FindPublishedPage(page, limit)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blogs", err)
	}
	return s.attachTags(blogs)
}

// Update saves a full blog row. The row must exist; updated_at is bumped.
func (s *BlogService) Update(blog *models.Blog) (*models.Blog, error) {
	existing, err := s.store.BlogRepo().FindByID(blog.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog", err)
	}
	if existing == nil {
		return nil, errs.NewNotFound("blog")
	}

	blog.CreatedAt = existing.CreatedAt
	blog.UpdatedAt = time.Now()
	if blog.Slug == "" {
		blog.Slug = existing.Slug
	}
	if err := s.store.BlogRepo().Update(blog); err != nil {
		return nil, errs.NewDatabaseError("update", "blog", err)
	}

	attached, err := s.attachTags([]models.Blog{*blog})
	if err != nil {
		return nil, err
	}
	return &attached[0], nil
}

// Delete removes a blog by id and reports how many rows were removed.
// Join rows referencing the blog are left behind, so the count covers the
// blogs table only.
func (s *BlogService) Delete(id uuid.UUID) (int64, error) {
	rows, err := s.store.BlogRepo().Delete(id)
	if err != nil {
		return 0, errs.NewDatabaseError("delete", "blog", err)
	}
	return rows, nil
}

// GetAllBlogTags returns every tag attached to at least one published blog
func (s *BlogService) GetAllBlogTags() ([]models.Tag, error) {
	tags, err := s.store.BlogTagRepo().DistinctPublishedTags()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog tags", err)
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

// attachTags zips tags onto a batch of blogs with three queries total: the
// callers' parent query, one join-table query, and one tag query.
func (s *BlogService) attachTags(blogs []models.Blog) ([]models.Blog, error) {
	if len(blogs) == 0 {
		return []models.Blog{}, nil
	}

	ids := make([]uuid.UUID, len(blogs))
	for i, blog := range blogs {
		ids[i] = blog.ID
	}

	joins, err := s.store.BlogTagRepo().FindByBlogIDs(ids)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "blog tags", err)
	}

	tagIDs := make([]uuid.UUID, 0, len(joins))
	for _, join := range joins {
		tagIDs = append(tagIDs, join.TagID)
	}
	index, err := tagsByID(s.store, tagIDs)
	if err != nil {
		return nil, err
	}

	byBlog := make(map[uuid.UUID][]models.Tag, len(blogs))
	for _, join := range joins {
		if tag, ok := index[join.TagID]; ok {
			byBlog[join.BlogID] = append(byBlog[join.BlogID], tag)
		}
	}

	for i := range blogs {
		tags := byBlog[blogs[i].ID]
		if tags == nil {
			tags = []models.Tag{}
		}
		blogs[i].Tags = tags
	}
	return blogs, nil
}
