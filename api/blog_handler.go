package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mparedes/portfolio-backend/errs"
	"github.com/mparedes/portfolio-backend/models"
	"github.com/mparedes/portfolio-backend/services"
)

type blogHandler struct {
	responder   Responder
	logger      zerolog.Logger
	blogService *services.BlogService
}

func newBlogHandler(blogService *services.BlogService) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		blogService: blogService,
	}
}

// createBlog creates a blog from the posted payload, deriving its slug from
// the title and resolving tag titles to tag rows
func (h blogHandler) createBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.BlogInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		blog, err := h.blogService.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteCreated(w, blog)
	}
}

// getAllBlogs returns all published blogs with their tags, newest first
func (h blogHandler) getAllBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogService.GetAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, blogs)
	}
}

// getBlogBySlug returns one published blog by slug
func (h blogHandler) getBlogBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		blog, err := h.blogService.GetBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, blog)
	}
}

// getFeaturedBlogs returns the newest published+featured blogs, capped at 3
func (h blogHandler) getFeaturedBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogService.GetFeatured()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, blogs)
	}
}

// getPaginatedBlogs returns one page of published blogs
func (h blogHandler) getPaginatedBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := strconv.Atoi(chi.URLParam(r, "page"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid page"))
			return
		}
		limit, err := strconv.Atoi(chi.URLParam(r, "limit"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid limit"))
			return
		}

		blogs, err := h.blogService.GetPage(page, limit)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, blogs)
	}
}

// getAllBlogTags returns the distinct tags attached to published blogs
func (h blogHandler) getAllBlogTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.blogService.GetAllBlogTags()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, tags)
	}
}

// updateBlog replaces a blog row with the posted payload
func (h blogHandler) updateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		var blog models.Blog
		if err := json.NewDecoder(r.Body).Decode(&blog); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		blog.ID = blogID

		updated, err := h.blogService.Update(&blog)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, updated)
	}
}

// deleteBlog removes a blog by id. Join rows referencing it stay behind;
// the reported count covers the blogs table only.
func (h blogHandler) deleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogID, err := uuid.Parse(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogID"))
			return
		}

		rows, err := h.blogService.Delete(blogID)
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
