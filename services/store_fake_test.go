package services

import (
	"sort"

	"github.com/google/uuid"

	"github.com/mparedes/portfolio-backend/database"
	"github.com/mparedes/portfolio-backend/models"
)

// fakeStore is an in-memory database.Store. Hand-written fakes keep the
// service tests fast and let individual queries be failed on demand.
type fakeStore struct {
	admins      *fakeAdminRepo
	blogs       *fakeBlogRepo
	projects    *fakeProjectRepo
	tags        *fakeTagRepo
	blogTags    *fakeBlogTagRepo
	projectTags *fakeProjectTagRepo
	contacts    *fakeContactRepo
}

func newFakeStore() *fakeStore {
	blogs := &fakeBlogRepo{}
	tags := &fakeTagRepo{}
	return &fakeStore{
		admins:      &fakeAdminRepo{},
		blogs:       blogs,
		projects:    &fakeProjectRepo{},
		tags:        tags,
		blogTags:    &fakeBlogTagRepo{blogs: blogs, tags: tags},
		projectTags: &fakeProjectTagRepo{},
		contacts:    &fakeContactRepo{},
	}
}

func (s *fakeStore) AdminRepo() database.AdminRepository           { return s.admins }
func (s *fakeStore) BlogRepo() database.BlogRepository             { return s.blogs }
func (s *fakeStore) ProjectRepo() database.ProjectRepository       { return s.projects }
func (s *fakeStore) TagRepo() database.TagRepository               { return s.tags }
func (s *fakeStore) BlogTagRepo() database.BlogTagRepository       { return s.blogTags }
func (s *fakeStore) ProjectTagRepo() database.ProjectTagRepository { return s.projectTags }
func (s *fakeStore) ContactRepo() database.ContactRepository       { return s.contacts }

// Transaction runs fn against the same store. Rollback is not simulated;
// tests that need a failing transaction inject errors into the repos.
func (s *fakeStore) Transaction(fn func(database.Store) error) error {
	return fn(s)
}

type fakeAdminRepo struct {
	rows    []models.Admin
	findErr error
	addErr  error
}

func (r *fakeAdminRepo) Add(admin *models.Admin) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.rows = append(r.rows, *admin)
	return nil
}

func (r *fakeAdminRepo) FindByID(id uuid.UUID) (*models.Admin, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.rows {
		if r.rows[i].ID == id {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) FindByEmail(email string) (*models.Admin, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.rows {
		if r.rows[i].Email == email {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) Update(admin *models.Admin) error {
	for i := range r.rows {
		if r.rows[i].ID == admin.ID {
			r.rows[i] = *admin
			return nil
		}
	}
	return nil
}

func (r *fakeAdminRepo) Delete(id uuid.UUID) (int64, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeBlogRepo struct {
	rows    []models.Blog
	findErr error
	addErr  error
}

func (r *fakeBlogRepo) Add(blog *models.Blog) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.rows = append(r.rows, *blog)
	return nil
}

func (r *fakeBlogRepo) FindByID(id uuid.UUID) (*models.Blog, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.rows {
		if r.rows[i].ID == id {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeBlogRepo) FindBySlug(slug string) (*models.Blog, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.rows {
		if r.rows[i].Slug == slug {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeBlogRepo) FindPublishedBySlug(slug string) (*models.Blog, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.rows {
		if r.rows[i].Slug == slug && r.rows[i].IsPublished {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeBlogRepo) FindAllPublished() ([]models.Blog, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.published(), nil
}

func (r *fakeBlogRepo) FindFeatured(limit int) ([]models.Blog, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	featured := make([]models.Blog, 0)
	for _, blog := range r.published() {
		if blog.IsFeatured {
			featured = append(featured, blog)
		}
	}
	if len(featured) > limit {
		featured = featured[:limit]
	}
	return featured, nil
}

func (r *fakeBlogRepo) FindPublishedPage(page, limit int) ([]models.Blog, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	published := r.published()
	offset := (page - 1) * limit
	if offset >= len(published) {
		return []models.Blog{}, nil
	}
	end := offset + limit
	if end > len(published) {
		end = len(published)
	}
	return published[offset:end], nil
}

func (r *fakeBlogRepo) Update(blog *models.Blog) error {
	for i := range r.rows {
		if r.rows[i].ID == blog.ID {
			r.rows[i] = *blog
			return nil
		}
	}
	return nil
}

func (r *fakeBlogRepo) Delete(id uuid.UUID) (int64, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeBlogRepo) published() []models.Blog {
	published := make([]models.Blog, 0)
	for _, blog := range r.rows {
		if blog.IsPublished {
			published = append(published, blog)
		}
	}
	sort.SliceStable(published, func(i, j int) bool {
		return published[i].PublishedAt.After(published[j].PublishedAt)
	})
	return published
}

type fakeProjectRepo struct {
	rows    []models.Project
	findErr error
	addErr  error
}

func (r *fakeProjectRepo) Add(project *models.Project) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.rows = append(r.rows, *project)
	return nil
}

func (r *fakeProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.rows {
		if r.rows[i].ID == id {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) FindPublishedByID(id uuid.UUID) (*models.Project, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.rows {
		if r.rows[i].ID == id && r.rows[i].IsPublished {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.rows {
		if r.rows[i].Slug == slug {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) FindPublishedBySlug(slug string) (*models.Project, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.rows {
		if r.rows[i].Slug == slug && r.rows[i].IsPublished {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) FindAllPublished() ([]models.Project, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.published(), nil
}

func (r *fakeProjectRepo) FindFeatured(limit int) ([]models.Project, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	featured := make([]models.Project, 0)
	for _, project := range r.published() {
		if project.IsFeatured {
			featured = append(featured, project)
		}
	}
	if len(featured) > limit {
		featured = featured[:limit]
	}
	return featured, nil
}

func (r *fakeProjectRepo) Update(project *models.Project) error {
	for i := range r.rows {
		if r.rows[i].ID == project.ID {
			r.rows[i] = *project
			return nil
		}
	}
	return nil
}

func (r *fakeProjectRepo) Delete(id uuid.UUID) (int64, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeProjectRepo) published() []models.Project {
	published := make([]models.Project, 0)
	for _, project := range r.rows {
		if project.IsPublished {
			published = append(published, project)
		}
	}
	sort.SliceStable(published, func(i, j int) bool {
		return published[i].PublishedAt.After(published[j].PublishedAt)
	})
	return published
}

type fakeTagRepo struct {
	rows    []models.Tag
	findErr error
	addErr  error
}

func (r *fakeTagRepo) Add(tag *models.Tag) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.rows = append(r.rows, *tag)
	return nil
}

func (r *fakeTagRepo) FindByID(id uuid.UUID) (*models.Tag, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.rows {
		if r.rows[i].ID == id {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeTagRepo) FindByIDs(ids []uuid.UUID) ([]models.Tag, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	tags := make([]models.Tag, 0, len(ids))
	for _, tag := range r.rows {
		if wanted[tag.ID] {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

func (r *fakeTagRepo) FindBySlug(slug string) (*models.Tag, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.rows {
		if r.rows[i].Slug == slug {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeTagRepo) FindAll() ([]models.Tag, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return append([]models.Tag{}, r.rows...), nil
}

type fakeBlogTagRepo struct {
	rows    []models.BlogTag
	blogs   *fakeBlogRepo
	tags    *fakeTagRepo
	addErr  error
	findErr error
}

func (r *fakeBlogTagRepo) Add(blogTag *models.BlogTag) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.rows = append(r.rows, *blogTag)
	return nil
}

func (r *fakeBlogTagRepo) FindByBlogID(blogID uuid.UUID) ([]models.BlogTag, error) {
	return r.FindByBlogIDs([]uuid.UUID{blogID})
}

func (r *fakeBlogTagRepo) FindByBlogIDs(blogIDs []uuid.UUID) ([]models.BlogTag, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	wanted := make(map[uuid.UUID]bool, len(blogIDs))
	for _, id := range blogIDs {
		wanted[id] = true
	}
	joins := make([]models.BlogTag, 0)
	for _, join := range r.rows {
		if wanted[join.BlogID] {
			joins = append(joins, join)
		}
	}
	return joins, nil
}

func (r *fakeBlogTagRepo) FindByTagID(tagID uuid.UUID) ([]models.BlogTag, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	joins := make([]models.BlogTag, 0)
	for _, join := range r.rows {
		if join.TagID == tagID {
			joins = append(joins, join)
		}
	}
	return joins, nil
}

func (r *fakeBlogTagRepo) Delete(blogID, tagID uuid.UUID) (int64, error) {
	for i := range r.rows {
		if r.rows[i].BlogID == blogID && r.rows[i].TagID == tagID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeBlogTagRepo) DistinctPublishedTags() ([]models.Tag, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	publishedBlogs := make(map[uuid.UUID]bool)
	for _, blog := range r.blogs.rows {
		if blog.IsPublished {
			publishedBlogs[blog.ID] = true
		}
	}
	seen := make(map[uuid.UUID]bool)
	tags := make([]models.Tag, 0)
	for _, join := range r.rows {
		if !publishedBlogs[join.BlogID] || seen[join.TagID] {
			continue
		}
		seen[join.TagID] = true
		for _, tag := range r.tags.rows {
			if tag.ID == join.TagID {
				tags = append(tags, tag)
				break
			}
		}
	}
	return tags, nil
}

type fakeProjectTagRepo struct {
	rows    []models.ProjectTag
	addErr  error
	findErr error
}

func (r *fakeProjectTagRepo) Add(projectTag *models.ProjectTag) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.rows = append(r.rows, *projectTag)
	return nil
}

func (r *fakeProjectTagRepo) FindByProjectID(projectID uuid.UUID) ([]models.ProjectTag, error) {
	return r.FindByProjectIDs([]uuid.UUID{projectID})
}

func (r *fakeProjectTagRepo) FindByProjectIDs(projectIDs []uuid.UUID) ([]models.ProjectTag, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	wanted := make(map[uuid.UUID]bool, len(projectIDs))
	for _, id := range projectIDs {
		wanted[id] = true
	}
	joins := make([]models.ProjectTag, 0)
	for _, join := range r.rows {
		if wanted[join.ProjectID] {
			joins = append(joins, join)
		}
	}
	return joins, nil
}

func (r *fakeProjectTagRepo) FindByTagID(tagID uuid.UUID) ([]models.ProjectTag, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	joins := make([]models.ProjectTag, 0)
	for _, join := range r.rows {
		if join.TagID == tagID {
			joins = append(joins, join)
		}
	}
	return joins, nil
}

func (r *fakeProjectTagRepo) Delete(projectID, tagID uuid.UUID) (int64, error) {
	for i := range r.rows {
		if r.rows[i].ProjectID == projectID && r.rows[i].TagID == tagID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeContactRepo struct {
	rows    []models.Contact
	addErr  error
	findErr error
}

func (r *fakeContactRepo) Add(contact *models.Contact) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.rows = append(r.rows, *contact)
	return nil
}

func (r *fakeContactRepo) FindAll() ([]models.Contact, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return append([]models.Contact{}, r.rows...), nil
}

func (r *fakeContactRepo) FindByID(id uuid.UUID) (*models.Contact, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for i := range r.rows {
		if r.rows[i].ID == id {
			row := r.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (r *fakeContactRepo) Update(contact *models.Contact) error {
	for i := range r.rows {
		if r.rows[i].ID == contact.ID {
			r.rows[i] = *contact
			return nil
		}
	}
	return nil
}

func (r *fakeContactRepo) Delete(id uuid.UUID) (int64, error) {
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
