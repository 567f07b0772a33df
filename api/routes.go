package api

import (
	"time"

	"github.com/go-chi/chi/v5"
)

// setupRoutes binds every handler to its path. Public reads stay open;
// mutations sit behind the API-key gate, and admin management additionally
// requires a verified session.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware, startupTime time.Time) {
	r.Get("/health", healthCheck(startupTime))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signin", handlers.authHandler.signIn())
			r.Post("/signout", handlers.authHandler.signOut())
		})

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", handlers.blogHandler.getAllBlogs())
			r.Get("/featured", handlers.blogHandler.getFeaturedBlogs())
			r.Get("/tags", handlers.blogHandler.getAllBlogTags())
			r.Get("/slug/{slug}", handlers.blogHandler.getBlogBySlug())
			r.Get("/pagination/{page}/{limit}", handlers.blogHandler.getPaginatedBlogs())

			r.Group(func(r chi.Router) {
				r.Use(auth.requireAPIKey)
				r.Post("/", handlers.blogHandler.createBlog())
				r.Put("/{blogID}", handlers.blogHandler.updateBlog())
				r.Delete("/{blogID}", handlers.blogHandler.deleteBlog())
			})
		})

		r.Route("/project", func(r chi.Router) {
			r.Get("/", handlers.projectHandler.getAllProjects())
			r.Get("/featured", handlers.projectHandler.getFeaturedProjects())
			r.Get("/slug/{slug}", handlers.projectHandler.getProjectBySlug())
			r.Get("/{projectID}", handlers.projectHandler.getProject())

			r.Group(func(r chi.Router) {
				r.Use(auth.requireAPIKey)
				r.Post("/", handlers.projectHandler.createProject())
				r.Put("/{projectID}", handlers.projectHandler.updateProject())
				r.Delete("/{projectID}", handlers.projectHandler.deleteProject())
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(auth.requireAPIKey)
			r.Use(auth.requireSession)
			r.Post("/", handlers.adminHandler.createAdmin())
			r.Put("/forgot-password", handlers.adminHandler.forgotPassword())
			r.Get("/email/{email}", handlers.adminHandler.getAdminByEmail())
			r.Get("/{adminID}", handlers.adminHandler.getAdminByID())
			r.Put("/{adminID}", handlers.adminHandler.updateAdmin())
			r.Delete("/{adminID}", handlers.adminHandler.deleteAdmin())
		})

		r.Route("/contact", func(r chi.Router) {
			r.Get("/", handlers.contactHandler.getAllContacts())
			r.Get("/{contactID}", handlers.contactHandler.getContact())

			r.Group(func(r chi.Router) {
				r.Use(auth.requireAPIKey)
				r.Post("/", handlers.contactHandler.createContact())
				r.Put("/{contactID}", handlers.contactHandler.updateContact())
				r.Delete("/{contactID}", handlers.contactHandler.deleteContact())
			})
		})

		r.Route("/project-tag", func(r chi.Router) {
			r.Get("/project/{projectID}", handlers.projectTagHandler.getProjectTagsByProjectID())
			r.Get("/tag/{tagID}", handlers.projectTagHandler.getProjectTagsByTagID())

			r.Group(func(r chi.Router) {
				r.Use(auth.requireAPIKey)
				r.Post("/", handlers.projectTagHandler.createProjectTag())
				r.Delete("/{projectID}/{tagID}", handlers.projectTagHandler.deleteProjectTag())
			})
		})
	})
}
