package services

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mparedes/portfolio-backend/errs"
	"github.com/mparedes/portfolio-backend/models"
)

func seedProject(t *testing.T, store *fakeStore, title string, published, featured bool, publishedAt time.Time) models.Project {
	t.Helper()
	project := models.Project{
		ID:          uuid.New(),
		AdminID:     uuid.New(),
		Title:       title,
		Slug:        makeSlug(title),
		Description: "desc",
		IsPublished: published,
		IsFeatured:  featured,
		PublishedAt: publishedAt,
		Tags:        []models.Tag{},
	}
	require.NoError(t, store.projects.Add(&project))
	return project
}

func TestProjectCreate(t *testing.T) {
	store := newFakeStore()
	svc := NewProjectService(store)

	project, err := svc.Create(ProjectInput{
		AdminID:     uuid.New(),
		Title:       "Side Quest",
		Description: "a small tool",
		IsPublished: true,
		GithubURL:   "https://github.com/me/side-quest",
		Tags:        []string{"Go"},
	})
	require.NoError(t, err)

	assert.Equal(t, "side-quest", project.Slug)
	assert.Equal(t, "Side Quest", project.Title)
	require.Len(t, project.Tags, 1)
	assert.Len(t, store.projectTags.rows, 1)
}

func TestProjectCreateRequiresTitleAndDescription(t *testing.T) {
	svc := NewProjectService(newFakeStore())

	_, err := svc.Create(ProjectInput{Description: "no title"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, errs.StatusOf(err))

	_, err = svc.Create(ProjectInput{Title: "no description"})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, errs.StatusOf(err))
}

func TestProjectCreateDecollidesSlugWithSuffix(t *testing.T) {
	store := newFakeStore()
	svc := NewProjectService(store)

	first, err := svc.Create(ProjectInput{Title: "Side Quest", Description: "a"})
	require.NoError(t, err)
	assert.Equal(t, "side-quest", first.Slug)

	second, err := svc.Create(ProjectInput{Title: "Side Quest", Description: "b"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Slug, second.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "side-quest-"))
	// The stored title carries the suffix so title and slug stay in sync
	assert.True(t, strings.HasPrefix(second.Title, "Side Quest "))
	assert.Equal(t, makeSlug(second.Title), second.Slug)
	assert.Len(t, store.projects.rows, 2)
}

func TestProjectGetByIDOnlyPublished(t *testing.T) {
	store := newFakeStore()
	svc := NewProjectService(store)

	draft := seedProject(t, store, "Hidden", false, false, time.Now())
	live := seedProject(t, store, "Visible", true, false, time.Now())

	got, err := svc.GetByID(live.ID)
	require.NoError(t, err)
	assert.Equal(t, live.ID, got.ID)
	assert.NotNil(t, got.Tags)

	_, err = svc.GetByID(draft.ID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, errs.StatusOf(err))

	_, err = svc.GetByID(uuid.New())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, errs.StatusOf(err))
}

func TestProjectGetBySlugOnlyPublished(t *testing.T) {
	store := newFakeStore()
	svc := NewProjectService(store)

	seedProject(t, store, "Hidden", false, false, time.Now())
	live := seedProject(t, store, "Visible", true, false, time.Now())

	got, err := svc.GetBySlug("visible")
	require.NoError(t, err)
	assert.Equal(t, live.ID, got.ID)

	_, err = svc.GetBySlug("hidden")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, errs.StatusOf(err))
}

func TestProjectGetFeaturedCapsAtThree(t *testing.T) {
	store := newFakeStore()
	svc := NewProjectService(store)

	base := time.Now()
	for i := 0; i < 4; i++ {
		seedProject(t, store, "Featured "+string(rune('A'+i)), true, true, base.Add(time.Duration(i)*time.Hour))
	}

	featured, err := svc.GetFeatured()
	require.NoError(t, err)
	require.Len(t, featured, 3)
	assert.Equal(t, "Featured D", featured[0].Title)
}

func TestProjectGetAllAttachesTags(t *testing.T) {
	store := newFakeStore()
	svc := NewProjectService(store)

	project := seedProject(t, store, "Tagged", true, false, time.Now())
	tag := models.Tag{ID: uuid.New(), Title: "Go", Slug: "go"}
	require.NoError(t, store.tags.Add(&tag))
	require.NoError(t, store.projectTags.Add(&models.ProjectTag{ProjectID: project.ID, TagID: tag.ID}))

	projects, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, projects, 1)
	require.Len(t, projects[0].Tags, 1)
	assert.Equal(t, "go", projects[0].Tags[0].Slug)
}

func TestProjectUpdateRequiresExistingRow(t *testing.T) {
	svc := NewProjectService(newFakeStore())

	_, err := svc.Update(&models.Project{ID: uuid.New(), Title: "Ghost"})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, errs.StatusOf(err))
}

func TestProjectDeleteReportsRowCount(t *testing.T) {
	store := newFakeStore()
	svc := NewProjectService(store)

	project := seedProject(t, store, "Doomed", true, false, time.Now())

	rows, err := svc.Delete(project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	rows, err = svc.Delete(project.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}
