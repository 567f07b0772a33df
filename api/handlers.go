package api

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mparedes/portfolio-backend/database"
	"github.com/mparedes/portfolio-backend/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	blogHandler       blogHandler
	projectHandler    projectHandler
	adminHandler      adminHandler
	contactHandler    contactHandler
	projectTagHandler projectTagHandler
	authHandler       authHandler
}

// initializeHandlers wires the service layer onto the store and returns all
// handlers organized in a routeHandlers struct
func initializeHandlers(store database.Store, authService *services.AuthService, notifier services.Notifier) *routeHandlers {
	return &routeHandlers{
		blogHandler:       newBlogHandler(services.NewBlogService(store)),
		projectHandler:    newProjectHandler(services.NewProjectService(store)),
		adminHandler:      newAdminHandler(services.NewAdminService(store, notifier)),
		contactHandler:    newContactHandler(services.NewContactService(store)),
		projectTagHandler: newProjectTagHandler(services.NewProjectTagService(store)),
		authHandler:       newAuthHandler(authService),
	}
}

// healthCheck reports service liveness and uptime
func healthCheck(startupTime time.Time) http.HandlerFunc {
	responder := NewResponder(log.With().Str("handlerName", "healthCheck").Logger())

	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]any{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(startupTime).Seconds(),
		})
	}
}
