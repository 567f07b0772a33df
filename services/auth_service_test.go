package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mparedes/portfolio-backend/errs"
)

func testAuthConfig() AuthConfig {
	return AuthConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    30 * 24 * time.Hour,
	}
}

func newTestAuthService(t *testing.T) (*AuthService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	adminSvc := NewAdminService(store, nil)
	_, err := adminSvc.Create(AdminInput{Name: "Marta", Email: "marta@example.com", Password: "hunter22"})
	require.NoError(t, err)
	return NewAuthService(store, testAuthConfig()), store
}

func TestSignInIssuesBothTokens(t *testing.T) {
	svc, store := newTestAuthService(t)

	result, err := svc.SignIn("marta@example.com", "hunter22")
	require.NoError(t, err)

	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.NotEqual(t, result.AccessToken, result.RefreshToken)
	assert.Equal(t, "marta@example.com", result.User.Email)
	assert.Equal(t, "Marta", result.User.Name)
	assert.Equal(t, store.admins.rows[0].ID.String(), result.User.ID)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	// Wrong password and unknown email must be indistinguishable
	_, wrongPw := svc.SignIn("marta@example.com", "wrong")
	_, unknown := svc.SignIn("ghost@example.com", "hunter22")

	require.Error(t, wrongPw)
	require.Error(t, unknown)
	assert.Equal(t, http.StatusUnauthorized, errs.StatusOf(wrongPw))
	assert.Equal(t, http.StatusUnauthorized, errs.StatusOf(unknown))
	assert.Equal(t, wrongPw.Error(), unknown.Error())
}

func TestSignInRejectsMalformedEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.SignIn("not-an-email", "whatever")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, errs.StatusOf(err))
}

func TestTokenRoundTrip(t *testing.T) {
	svc, store := newTestAuthService(t)

	result, err := svc.SignIn("marta@example.com", "hunter22")
	require.NoError(t, err)

	claims, err := svc.VerifyAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, store.admins.rows[0].ID.String(), claims.Subject)
	assert.Equal(t, "marta@example.com", claims.Email)

	claims, err = svc.VerifyRefreshToken(result.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "marta@example.com", claims.Email)
}

func TestTokensVerifyAgainstTheirOwnSecretOnly(t *testing.T) {
	svc, _ := newTestAuthService(t)

	result, err := svc.SignIn("marta@example.com", "hunter22")
	require.NoError(t, err)

	// An access token is not a refresh token and vice versa
	_, err = svc.VerifyRefreshToken(result.AccessToken)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, errs.StatusOf(err))

	_, err = svc.VerifyAccessToken(result.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, errs.StatusOf(err))
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	store := newFakeStore()
	adminSvc := NewAdminService(store, nil)
	_, err := adminSvc.Create(AdminInput{Name: "x", Email: "x@example.com", Password: "pw"})
	require.NoError(t, err)

	cfg := testAuthConfig()
	cfg.AccessTTL = -time.Minute
	svc := NewAuthService(store, cfg)

	result, err := svc.SignIn("x@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(result.AccessToken)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, errs.StatusOf(err))
	assert.Contains(t, err.Error(), "expired")
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.VerifyAccessToken("not.a.token")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, errs.StatusOf(err))
}

func TestRefreshTTLReportsConfiguredValue(t *testing.T) {
	svc := NewAuthService(newFakeStore(), testAuthConfig())
	assert.Equal(t, 30*24*time.Hour, svc.RefreshTTL())
}
