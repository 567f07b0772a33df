package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mparedes/portfolio-backend/models"
)

type AdminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) *AdminRepo {
	return &AdminRepo{db}
}

// Add inserts a new admin into the database
func (r *AdminRepo) Add(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// FindByID returns an admin by id, or nil when no row matches
func (r *AdminRepo) FindByID(id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindByEmail returns an admin by email, or nil when no row matches
func (r *AdminRepo) FindByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Update saves the full admin row
func (r *AdminRepo) Update(admin *models.Admin) error {
	return r.db.Save(admin).Error
}

// Delete removes an admin by id and reports how many rows were removed
func (r *AdminRepo) Delete(id uuid.UUID) (int64, error) {
	result := r.db.Delete(&models.Admin{}, "id = ?", id)
	return result.RowsAffected, result.Error
}
