package api

import (
	"crypto/subtle"
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mparedes/portfolio-backend/errs"
	"github.com/mparedes/portfolio-backend/services"
)

type authMiddleware struct {
	responder   Responder
	authService *services.AuthService
	apiKey      string
}

func newAuthMiddleware(authService *services.AuthService, apiKey string) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder:   NewResponder(logger),
		authService: authService,
		apiKey:      apiKey,
	}
}

// requireAPIKey rejects requests whose x-api-key header does not match the
// configured secret. Nothing downstream runs on a mismatch.
func (m authMiddleware) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("x-api-key")
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			m.responder.WriteError(w, errs.NewUnauthorizedError("unauthorized"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireSession rejects requests unless both the bearer access token and
// the refreshToken cookie verify. The decoded access-token claims are
// attached to the request context for downstream handlers.
func (m authMiddleware) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.NewUnauthorizedError("unauthorized"))
			return
		}
		accessToken := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := m.authService.VerifyAccessToken(accessToken)
		if err != nil {
			m.responder.WriteError(w, errs.NewUnauthorizedError("unauthorized"))
			return
		}

		cookie, err := r.Cookie("refreshToken")
		if err != nil || cookie.Value == "" {
			m.responder.WriteError(w, errs.NewUnauthorizedError("unauthorized"))
			return
		}
		if _, err := m.authService.VerifyRefreshToken(cookie.Value); err != nil {
			m.responder.WriteError(w, errs.NewUnauthorizedError("unauthorized"))
			return
		}

		updatedCtx := ctxWithAdmin(r.Context(), claims.Subject, claims.Email)
		next.ServeHTTP(w, r.WithContext(updatedCtx))
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// HTTPLoggingMiddleware logs requests with a level picked from the status code
func HTTPLoggingMiddleware(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
