package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/mparedes/portfolio-backend/database"
	"github.com/mparedes/portfolio-backend/errs"
	"github.com/mparedes/portfolio-backend/models"
)

type ContactService struct {
	store database.Store
}

func NewContactService(store database.Store) *ContactService {
	return &ContactService{store: store}
}

// Create inserts a new contact profile
func (s *ContactService) Create(contact *models.Contact) (*models.Contact, error) {
	if contact.FirstName == "" {
		return nil, errs.NewBadRequestErrorWithField("missing required field", "firstName", "firstName is required")
	}
	if contact.Email != "" && !validEmail(contact.Email) {
		return nil, errs.NewBadRequestErrorWithField("invalid field", "email", "email format is invalid")
	}

	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	if err := s.store.ContactRepo().Add(contact); err != nil {
		return nil, errs.NewDatabaseError("create", "contact", err)
	}
	return contact, nil
}

// GetAll returns all contact profiles
func (s *ContactService) GetAll() ([]models.Contact, error) {
	contacts, err := s.store.ContactRepo().FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "contacts", err)
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return contacts, nil
}

// GetByID returns a contact profile by id
func (s *ContactService) GetByID(id uuid.UUID) (*models.Contact, error) {
	contact, err := s.store.ContactRepo().FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "contact", err)
	}
	if contact == nil {
		return nil, errs.NewNotFound("contact")
	}
	return contact, nil
}

// Update saves a full contact row. The row must exist; updated_at is bumped.
func (s *ContactService) Update(contact *models.Contact) (*models.Contact, error) {
	existing, err := s.store.ContactRepo().FindByID(contact.ID)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "contact", err)
	}
	if existing == nil {
		return nil, errs.NewNotFound("contact")
	}
	if contact.Email != "" && !validEmail(contact.Email) {
		return nil, errs.NewBadRequestErrorWithField("invalid field", "email", "email format is invalid")
	}

	contact.CreatedAt = existing.CreatedAt
	contact.UpdatedAt = time.Now()
	if err := s.store.ContactRepo().Update(contact); err != nil {
		return nil, errs.NewDatabaseError("update", "contact", err)
	}
	return contact, nil
}

// Delete removes a contact profile by id and reports rows removed
func (s *ContactService) Delete(id uuid.UUID) (int64, error) {
	rows, err := s.store.ContactRepo().Delete(id)
	if err != nil {
		return 0, errs.NewDatabaseError("delete", "contact", err)
	}
	return rows, nil
}
