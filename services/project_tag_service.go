package services

import (
	"github.com/google/uuid"

	"github.com/mparedes/portfolio-backend/database"
	"github.com/mparedes/portfolio-backend/errs"
	"github.com/mparedes/portfolio-backend/models"
)

type ProjectTagService struct {
	store database.Store
}

func NewProjectTagService(store database.Store) *ProjectTagService {
	return &ProjectTagService{store: store}
}

// Create links an existing project to an existing tag. A duplicate link
// surfaces as a conflict through the join table's primary key.
func (s *ProjectTagService) Create(projectID, tagID uuid.UUID) (*models.ProjectTag, error) {
	project, err := s.store.ProjectRepo().FindByID(projectID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil, errs.NewNotFound("project")
	}

	tag, err := s.store.TagRepo().FindByID(tagID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "tag", err)
	}
	if tag == nil {
		return nil, errs.NewNotFound("tag")
	}

	join := models.ProjectTag{ProjectID: projectID, TagID: tagID}
	if err := s.store.ProjectTagRepo().Add(&join); err != nil {
		return nil, errs.NewDatabaseError("create", "project tag", err)
	}
	return &join, nil
}

// GetByProjectID returns the join rows for one project
func (s *ProjectTagService) GetByProjectID(projectID uuid.UUID) ([]models.ProjectTag, error) {
	joins, err := s.store.ProjectTagRepo().FindByProjectID(projectID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project tags", err)
	}
	if joins == nil {
		joins = []models.ProjectTag{}
	}
	return joins, nil
}

// GetByTagID returns the join rows referencing one tag
func (s *ProjectTagService) GetByTagID(tagID uuid.UUID) ([]models.ProjectTag, error) {
	joins, err := s.store.ProjectTagRepo().FindByTagID(tagID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project tags", err)
	}
	if joins == nil {
		joins = []models.ProjectTag{}
	}
	return joins, nil
}

// Delete removes the join row for (projectID, tagID) and reports rows removed
func (s *ProjectTagService) Delete(projectID, tagID uuid.UUID) (int64, error) {
	rows, err := s.store.ProjectTagRepo().Delete(projectID, tagID)
	if err != nil {
		return 0, errs.NewDatabaseError("delete", "project tag", err)
	}
	return rows, nil
}
