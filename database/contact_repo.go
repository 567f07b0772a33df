package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mparedes/portfolio-backend/models"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// Add inserts a new contact profile
func (r *ContactRepo) Add(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// FindAll returns all contact profiles
func (r *ContactRepo) FindAll() ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.Find(&contacts).Error
	return contacts, err
}

// FindByID returns a contact profile by id, or nil when no row matches
func (r *ContactRepo) FindByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// Update saves the full contact row
func (r *ContactRepo) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Delete removes a contact profile by id and reports rows removed
func (r *ContactRepo) Delete(id uuid.UUID) (int64, error) {
	result := r.db.Delete(&models.Contact{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
