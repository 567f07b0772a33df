package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mparedes/portfolio-backend/errs"
	"github.com/mparedes/portfolio-backend/services"
)

type adminHandler struct {
	responder    Responder
	logger       zerolog.Logger
	adminService *services.AdminService
}

func newAdminHandler(adminService *services.AdminService) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		adminService: adminService,
	}
}

// createAdmin registers a new admin account
func (h adminHandler) createAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.AdminInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode admin request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		admin, err := h.adminService.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteCreated(w, admin)
	}
}

// getAdminByID returns an admin by id
func (h adminHandler) getAdminByID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, err := uuid.Parse(chi.URLParam(r, "adminID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid adminID"))
			return
		}

		admin, err := h.adminService.GetByID(adminID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, admin)
	}
}

// getAdminByEmail returns an admin by email
func (h adminHandler) getAdminByEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		if email == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing email"))
			return
		}

		admin, err := h.adminService.GetByEmail(email)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, admin)
	}
}

// updateAdmin saves admin name/email/password
func (h adminHandler) updateAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, err := uuid.Parse(chi.URLParam(r, "adminID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid adminID"))
			return
		}

		var input services.AdminInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode admin request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		admin, err := h.adminService.Update(adminID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, admin)
	}
}

// deleteAdmin removes an admin by id
func (h adminHandler) deleteAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, err := uuid.Parse(chi.URLParam(r, "adminID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid adminID"))
			return
		}

		rows, err := h.adminService.Delete(adminID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"deleted": rows,
		})
	}
}

// forgotPassword replaces the password for the admin registered under the
// posted email
func (h adminHandler) forgotPassword() http.HandlerFunc {
	type request struct {
		Email       string `json:"email"`
		NewPassword string `json:"newPassword"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode forgot-password request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		admin, err := h.adminService.ForgotPassword(req.Email, req.NewPassword)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, admin)
	}
}
