package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/mparedes/portfolio-backend/database"
	"github.com/mparedes/portfolio-backend/errs"
	"github.com/mparedes/portfolio-backend/models"
)

const bcryptCost = 10

// AdminInput is the request payload for creating or updating an admin
type AdminInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminService struct {
	store    database.Store
	notifier Notifier
}

// NewAdminService builds an AdminService. notifier may be nil, in which
// case password-reset notifications are skipped.
func NewAdminService(store database.Store, notifier Notifier) *AdminService {
	return &AdminService{store: store, notifier: notifier}
}

// Create registers a new admin. The email must pass pattern validation and
// not already be registered; the password is stored as a bcrypt hash.
func (s *AdminService) Create(input AdminInput) (*models.Admin, error) {
	if !validEmail(input.Email) {
		return nil, errs.NewBadRequestErrorWithField("invalid field", "email", "email format is invalid")
	}
	if input.Password == "" {
		return nil, errs.NewBadRequestErrorWithField("missing required field", "password", "password is required")
	}

	existing, err := s.store.AdminRepo().FindByEmail(input.Email)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "admin", err)
	}
	if existing != nil {
		return nil, errs.NewAlreadyExists("admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to hash password", err)
	}

	admin := models.Admin{
		ID:       uuid.New(),
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
	}
	if err := s.store.AdminRepo().Add(&admin); err != nil {
		return nil, errs.NewDatabaseError("create", "admin", err)
	}
	return &admin, nil
}

// GetByID returns an admin by id
func (s *AdminService) GetByID(id uuid.UUID) (*models.Admin, error) {
	admin, err := s.store.AdminRepo().FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "admin", err)
	}
	if admin == nil {
		return nil, errs.NewNotFound("admin")
	}
	return admin, nil
}

// GetByEmail returns an admin by email
func (s *AdminService) GetByEmail(email string) (*models.Admin, error) {
	admin, err := s.store.AdminRepo().FindByEmail(email)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "admin", err)
	}
	if admin == nil {
		return nil, errs.NewNotFound("admin")
	}
	return admin, nil
}

// Update saves admin name/email and, when a new password is supplied,
// replaces the stored hash
func (s *AdminService) Update(id uuid.UUID, input AdminInput) (*models.Admin, error) {
	admin, err := s.store.AdminRepo().FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "admin", err)
	}
	if admin == nil {
		return nil, errs.NewNotFound("admin")
	}

	if input.Email != "" {
		if !validEmail(input.Email) {
			return nil, errs.NewBadRequestErrorWithField("invalid field", "email", "email format is invalid")
		}
		admin.Email = input.Email
	}
	if input.Name != "" {
		admin.Name = input.Name
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, errs.NewInternalErrorWithCause("failed to hash password", err)
		}
		admin.Password = string(hash)
	}
	admin.UpdatedAt = time.Now()

	if err := s.store.AdminRepo().Update(admin); err != nil {
		return nil, errs.NewDatabaseError("update", "admin", err)
	}
	return admin, nil
}

// Delete removes an admin by id and reports how many rows were removed
func (s *AdminService) Delete(id uuid.UUID) (int64, error) {
	rows, err := s.store.AdminRepo().Delete(id)
	if err != nil {
		return 0, errs.NewDatabaseError("delete", "admin", err)
	}
	return rows, nil
}

// ForgotPassword replaces the password hash for the admin registered under
// email. A notification email is sent best-effort; a delivery failure is
// logged and does not fail the reset.
func (s *AdminService) ForgotPassword(email, newPassword string) (*models.Admin, error) {
	if !validEmail(email) {
		return nil, errs.NewBadRequestErrorWithField("invalid field", "email", "email format is invalid")
	}
	if newPassword == "" {
		return nil, errs.NewBadRequestErrorWithField("missing required field", "password", "password is required")
	}

	admin, err := s.store.AdminRepo().FindByEmail(email)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "admin", err)
	}
	if admin == nil {
		return nil, errs.NewNotFound("admin")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to hash password", err)
	}
	admin.Password = string(hash)
	admin.UpdatedAt = time.Now()

	if err := s.store.AdminRepo().Update(admin); err != nil {
		return nil, errs.NewDatabaseError("update", "admin", err)
	}

	if s.notifier != nil {
		subject := "Your password was changed"
		body := "<p>The password for your portfolio admin account was just changed. If this wasn't you, reset it again immediately.</p>"
		if err := s.notifier.Send(subject, body, []string{admin.Email}); err != nil {
			log.Error().Err(err).Str("email", admin.Email).Msg("Failed to send password change notification")
		}
	}

	return admin, nil
}
