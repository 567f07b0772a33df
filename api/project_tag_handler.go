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

type projectTagHandler struct {
	responder         Responder
	logger            zerolog.Logger
	projectTagService *services.ProjectTagService
}

func newProjectTagHandler(projectTagService *services.ProjectTagService) projectTagHandler {
	logger := log.With().Str("handlerName", "projectTagHandler").Logger()

	return projectTagHandler{
		responder:         NewResponder(logger),
		logger:            logger,
		projectTagService: projectTagService,
	}
}

// createProjectTag links an existing project to an existing tag
func (h projectTagHandler) createProjectTag() http.HandlerFunc {
	type request struct {
		ProjectID uuid.UUID `json:"projectId"`
		TagID     uuid.UUID `json:"tagId"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project tag request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if req.ProjectID == uuid.Nil || req.TagID == uuid.Nil {
			h.responder.WriteError(w, errs.NewBadRequestError("projectId and tagId are required"))
			return
		}

		join, err := h.projectTagService.Create(req.ProjectID, req.TagID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteCreated(w, join)
	}
}

// getProjectTagsByProjectID returns the join rows for one project
func (h projectTagHandler) getProjectTagsByProjectID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		joins, err := h.projectTagService.GetByProjectID(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, joins)
	}
}

// getProjectTagsByTagID returns the join rows referencing one tag
func (h projectTagHandler) getProjectTagsByTagID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tagID, err := uuid.Parse(chi.URLParam(r, "tagID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid tagID"))
			return
		}

		joins, err := h.projectTagService.GetByTagID(tagID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, joins)
	}
}

// deleteProjectTag removes the join row for (projectID, tagID)
func (h projectTagHandler) deleteProjectTag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}
		tagID, err := uuid.Parse(chi.URLParam(r, "tagID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid tagID"))
			return
		}

		rows, err := h.projectTagService.Delete(projectID, tagID)
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
