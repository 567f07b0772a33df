package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mparedes/portfolio-backend/errs"
	"github.com/mparedes/portfolio-backend/services"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	authService *services.AuthService
}

func newAuthHandler(authService *services.AuthService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		authService: authService,
	}
}

// signIn verifies credentials, sets the refresh token as an HttpOnly cookie
// and returns both tokens plus the admin identity
func (h authHandler) signIn() http.HandlerFunc {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode sign-in request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		result, err := h.authService.SignIn(req.Email, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     "refreshToken",
			Value:    result.RefreshToken,
			Path:     "/",
			MaxAge:   int(h.authService.RefreshTTL().Seconds()),
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})

		h.responder.WriteJSON(w, result)
	}
}

// signOut clears the refresh token cookie
func (h authHandler) signOut() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     "refreshToken",
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})

		h.responder.WriteJSON(w, map[string]string{
			"message": "signed out successfully",
		})
	}
}
