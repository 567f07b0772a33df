package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/mparedes/portfolio-backend/database"
	"github.com/mparedes/portfolio-backend/errs"
	"github.com/mparedes/portfolio-backend/models"
)

// maxSlugAttempts bounds the retry loop that de-collides project slugs.
// Collisions are rare, so hitting the cap means something is wrong with
// the input rather than bad luck.
const maxSlugAttempts = 10

// ProjectInput is the request payload for creating a project
type ProjectInput struct {
	AdminID         uuid.UUID `json:"adminId"`
	Title           string    `json:"title"`
	MetaDescription string    `json:"metaDescription"`
	Description     string    `json:"description"`
	IsPublished     bool      `json:"isPublished"`
	PublishedAt     time.Time `json:"publishedAt"`
	IsFeatured      bool      `json:"isFeatured"`
	Media           string    `json:"media"`
	GithubURL       string    `json:"githubUrl"`
	LiveDemoURL     string    `json:"liveDemoUrl"`
	Tags            []string  `json:"tags"`
}

type ProjectService struct {
	store database.Store
}

func NewProjectService(store database.Store) *ProjectService {
	return &ProjectService{store: store}
}

// Create inserts a project. When the derived slug is taken, a random suffix
// is appended to the title and the slug recomputed until a free one is
// found, bounded by maxSlugAttempts. The project row, tags, and join rows
// commit in one transaction; the unique slug index backstops the remaining
// race window.
func (s *ProjectService) Create(input ProjectInput) (*models.Project, error) {
	if input.Title == "" {
		return nil, errs.NewBadRequestErrorWithField("missing required field", "title", "title is required")
	}
	if input.Description == "" {
		return nil, errs.NewBadRequestErrorWithField("missing required field", "description", "description is required")
	}

	title := input.Title
	projectSlug := makeSlug(title)
	for attempt := 0; ; attempt++ {
		existing, err := s.store.ProjectRepo().FindBySlug(projectSlug)
		if err != nil {
			return nil, errs.NewDatabaseError("find", "project", err)
		}
		if existing == nil {
			break
		}
		if attempt+1 >= maxSlugAttempts {
			return nil, errs.NewConflictError("could not derive a unique slug for project")
		}
		title = addRandomSuffix(title)
		projectSlug = makeSlug(title)
	}

	publishedAt := input.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}

	project := models.Project{
		ID:              uuid.New(),
		AdminID:         input.AdminID,
		Title:           title,
		Slug:            projectSlug,
		MetaDescription: input.MetaDescription,
		Description:     input.Description,
		IsPublished:     input.IsPublished,
		PublishedAt:     publishedAt,
		IsFeatured:      input.IsFeatured,
		Media:           input.Media,
		GithubURL:       input.GithubURL,
		LiveDemoURL:     input.LiveDemoURL,
		Tags:            []models.Tag{},
	}

	err := s.store.Transaction(func(tx database.Store) error {
		if err := tx.ProjectRepo().Add(&project); err != nil {
			return errs.NewDatabaseError("create", "project", err)
		}
		tags, err := resolveTags(tx, input.Tags)
		if err != nil {
			return err
		}
		for _, tag := range tags {
			join := models.ProjectTag{ProjectID: project.ID, TagID: tag.ID}
			if err := tx.ProjectTagRepo().Add(&join); err != nil {
				return errs.NewDatabaseError("create", "project tag", err)
			}
		}
		project.Tags = tags
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// GetAll returns published projects newest first with their tags attached
func (s *ProjectService) GetAll() ([]models.Project, error) {
	projects, err := s.store.ProjectRepo().FindAllPublished()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return s.attachTags(projects)
}

// GetByID returns a published project by id with its tags attached
func (s *ProjectService) GetByID(id uuid.UUID) (*models.Project, error) {
	project, err := s.store.ProjectRepo().FindPublishedByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil, errs.NewNotFound("project")
	}
	attached, err := s.attachTags([]models.Project{*project})
	if err != nil {
		return nil, err
	}
	return &attached[0], nil
}

// GetBySlug returns a published project by slug with its tags attached
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	project, err := s.store.ProjectRepo().FindPublishedBySlug(slug)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil, errs.NewNotFound("project")
	}
	attached, err := s.attachTags([]models.Project{*project})
	if err != nil {
		return nil, err
	}
	return &attached[0], nil
}

// GetFeatured returns up to 3 published, featured projects newest first
func (s *ProjectService) GetFeatured() ([]models.Project, error) {
	projects, err := s.store.ProjectRepo().FindFeatured(featuredLimit)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "featured projects", err)
	}
	return s.attachTags(projects)
}

// Update saves a full project row. The row must exist; updated_at is bumped.
func (s *ProjectService) Update(project *models.Project) (*models.Project, error) {
	existing, err := s.store.ProjectRepo().FindByID(project.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if existing == nil {
		return nil, errs.NewNotFound("project")
	}

	project.CreatedAt = existing.CreatedAt
	project.UpdatedAt = time.Now()
	if project.Slug == "" {
		project.Slug = existing.Slug
	}
	if err := s.store.ProjectRepo().Update(project); err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}

	attached, err := s.attachTags([]models.Project{*project})
	if err != nil {
		return nil, err
	}
	return &attached[0], nil
}

// Delete removes a project by id and reports how many rows were removed
func (s *ProjectService) Delete(id uuid.UUID) (int64, error) {
	rows, err := s.store.ProjectRepo().Delete(id)
	if err != nil {
		return 0, errs.NewDatabaseError("delete", "project", err)
	}
	return rows, nil
}

// attachTags zips tags onto a batch of projects with three queries total
func (s *ProjectService) attachTags(projects []models.Project) ([]models.Project, error) {
	if len(projects) == 0 {
		return []models.Project{}, nil
	}

	ids := make([]uuid.UUID, len(projects))
	for i, project := range projects {
		ids[i] = project.ID
	}

	joins, err := s.store.ProjectTagRepo().FindByProjectIDs(ids)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project tags", err)
	}

	tagIDs := make([]uuid.UUID, 0, len(joins))
	for _, join := range joins {
		tagIDs = append(tagIDs, join.TagID)
	}
	index, err := tagsByID(s.store, tagIDs)
	if err != nil {
		return nil, err
	}

	byProject := make(map[uuid.UUID][]models.Tag, len(projects))
	for _, join := range joins {
		if tag, ok := index[join.TagID]; ok {
			byProject[join.ProjectID] = append(byProject[join.ProjectID], tag)
		}
	}

	for i := range projects {
		tags := byProject[projects[i].ID]
		if tags == nil {
			tags = []models.Tag{}
		}
		projects[i].Tags = tags
	}
	return projects, nil
}
