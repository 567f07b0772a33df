package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mparedes/portfolio-backend/database"
	"github.com/mparedes/portfolio-backend/errs"
)

// AuthConfig carries the signing secrets and lifetimes for the two token
// kinds. Access and refresh tokens verify against separate secrets.
type AuthConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// TokenClaims is the payload carried by both token kinds: the admin id in
// the standard subject claim plus the email.
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SignInResult is the response to a successful sign-in
type SignInResult struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         SignedInUser `json:"user"`
}

// SignedInUser is the admin identity echoed back on sign-in
type SignedInUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AuthService struct {
	store database.Store
	cfg   AuthConfig
}

func NewAuthService(store database.Store, cfg AuthConfig) *AuthService {
	return &AuthService{store: store, cfg: cfg}
}

// SignIn verifies the credentials and issues an access and a refresh token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) SignIn(email, password string) (*SignInResult, error) {
	if !validEmail(email) {
		return nil, errs.NewBadRequestErrorWithField("invalid field", "email", "email format is invalid")
	}

	admin, err := s.store.AdminRepo().FindByEmail(email)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "admin", err)
	}
	if admin == nil {
		return nil, errs.NewUnauthorizedError("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, errs.NewUnauthorizedError("invalid credentials")
	}

	accessToken, err := s.sign(admin.ID.String(), admin.Email, s.cfg.AccessSecret, s.cfg.AccessTTL)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to sign access token", err)
	}
	refreshToken, err := s.sign(admin.ID.String(), admin.Email, s.cfg.RefreshSecret, s.cfg.RefreshTTL)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to sign refresh token", err)
	}

	return &SignInResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: SignedInUser{
			ID:    admin.ID.String(),
			Email: admin.Email,
			Name:  admin.Name,
		},
	}, nil
}

// VerifyAccessToken validates an access token and returns its claims
func (s *AuthService) VerifyAccessToken(token string) (*TokenClaims, error) {
	return verify(token, s.cfg.AccessSecret)
}

// VerifyRefreshToken validates a refresh token and returns its claims
func (s *AuthService) VerifyRefreshToken(token string) (*TokenClaims, error) {
	return verify(token, s.cfg.RefreshSecret)
}

// RefreshTTL reports how long refresh tokens live, used for the cookie age
func (s *AuthService) RefreshTTL() time.Duration {
	return s.cfg.RefreshTTL
}

func (s *AuthService) sign(adminID, email, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func verify(tokenStr, secret string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&TokenClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errs.NewUnauthorizedError("token expired")
		}
		return nil, errs.NewUnauthorizedError("invalid token")
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, errs.NewUnauthorizedError("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, errs.NewUnauthorizedError("token has no subject")
	}
	return claims, nil
}
