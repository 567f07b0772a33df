package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog/log"

	"github.com/mparedes/portfolio-backend/config"
	"github.com/mparedes/portfolio-backend/database"
	"github.com/mparedes/portfolio-backend/services"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(store database.Store) (Server, error) {
	c := config.New()

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port)

	startupTime := time.Now()

	router := newRouter(store, withConfig(c), withStartupTime(startupTime))

	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 60)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 60)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 120)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(store database.Store, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	authService := services.NewAuthService(store, services.AuthConfig{
		AccessSecret:  config.GetString(router.config, "JWT_ACCESS_SECRET", ""),
		RefreshSecret: config.GetString(router.config, "JWT_REFRESH_SECRET", ""),
		AccessTTL:     time.Duration(config.GetInt(router.config, "JWT_ACCESS_EXPIRATION_MINUTES", 15)) * time.Minute,
		RefreshTTL:    time.Duration(config.GetInt(router.config, "JWT_REFRESH_EXPIRATION_DAYS", 30)) * 24 * time.Hour,
	})

	var notifier services.Notifier
	if n := services.NewResendNotifier(
		config.GetString(router.config, "RESEND_API_KEY", ""),
		config.GetString(router.config, "RESEND_FROM_EMAIL", ""),
	); n != nil {
		notifier = n
	}

	handlers := initializeHandlers(store, authService, notifier)

	apiKey := config.GetString(router.config, "INTERNAL_API_KEY", "")
	if apiKey == "" {
		log.Warn().Msg("INTERNAL_API_KEY not set, gated routes will reject all requests")
	}
	authMiddleware := newAuthMiddleware(authService, apiKey)

	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(httprate.LimitByIP(
		config.GetInt(router.config, "RATE_LIMIT_REQUESTS", 100),
		time.Duration(config.GetInt(router.config, "RATE_LIMIT_WINDOW_MINUTES", 10))*time.Minute,
	))
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "x-api-key"},
		AllowCredentials: true,
		Debug:            config.GetBool(router.config, "CORS_DEBUG", false),
	}))
	chiRouter.Use(HTTPLoggingMiddleware)

	setupRoutes(chiRouter, handlers, authMiddleware, router.startupTime)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
