package auth_test

import (
	"testing"

	"github.com/Anieto86/LabLink/internal/mocks"
	"github.com/Anieto86/LabLink/internal/models"
	"github.com/Anieto86/LabLink/internal/services/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*auth.AuthService, *mocks.UserStore, *mocks.RefreshTokenStore) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	users := mocks.NewUserStore()
	tokens := mocks.NewRefreshTokenStore()
	return auth.NewAuthService(users, tokens, nil), users, tokens
}

func registerUser(t *testing.T, svc *auth.AuthService, email string) *models.RegisterResponse {
	t.Helper()
	resp, err := svc.Register(&models.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	return resp
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", hash)
	assert.True(t, auth.CheckPassword("password123", hash))
	assert.False(t, auth.CheckPassword("password124", hash))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	assert.False(t, auth.CheckPassword("password123", "not-a-bcrypt-hash"))
	assert.False(t, auth.CheckPassword("password123", ""))
}

func TestRegisterIssuesTokens(t *testing.T) {
	svc, users, tokens := newTestService(t)

	resp := registerUser(t, svc, "a@x.com")

	assert.Equal(t, "a@x.com", resp.Email)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	user, err := users.GetByID(resp.ID)
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.Equal(t, models.RoleViewer, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)

	// Only the hash of the refresh secret may reach the store.
	assert.NotContains(t, tokens.Hashes(), resp.RefreshToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	registerUser(t, svc, "a@x.com")

	_, err := svc.Register(&models.RegisterRequest{
		Name:     "Another",
		Email:    "a@x.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrEmailTaken)
}

func TestRegisterInvalidRole(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Register(&models.RegisterRequest{
		Name:     "Test",
		Role:     "wizard",
		Email:    "a@x.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidRole)
}

func TestLogin(t *testing.T) {
	svc, users, _ := newTestService(t)
	resp := registerUser(t, svc, "a@x.com")

	pair, err := svc.Login(&models.LoginRequest{Email: "a@x.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, resp.RefreshToken, pair.RefreshToken)

	_, err = svc.Login(&models.LoginRequest{Email: "a@x.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = svc.Login(&models.LoginRequest{Email: "unknown@x.com", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	require.NoError(t, users.SetActive(resp.ID, false))
	_, err = svc.Login(&models.LoginRequest{Email: "a@x.com", Password: "password123"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestVerifyAccessTokenRoundTrip(t *testing.T) {
	svc, _, _ := newTestService(t)
	resp := registerUser(t, svc, "a@x.com")

	identity, err := svc.VerifyAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, identity.UserID)
	assert.Equal(t, "a@x.com", identity.Email)
}

func TestVerifyAccessTokenMalformed(t *testing.T) {
	svc, _, _ := newTestService(t)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.VerifyAccessToken(token)
		assert.ErrorIs(t, err, auth.ErrInvalidAccessToken)
	}
}

func TestVerifyAccessTokenWrongSecret(t *testing.T) {
	svc, _, _ := newTestService(t)
	resp := registerUser(t, svc, "a@x.com")

	t.Setenv("JWT_SECRET", "another-secret")
	other := auth.NewAuthService(mocks.NewUserStore(), mocks.NewRefreshTokenStore(), nil)

	_, err := other.VerifyAccessToken(resp.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidAccessToken)
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ACCESS_TOKEN_TTL", "-1m")
	svc := auth.NewAuthService(mocks.NewUserStore(), mocks.NewRefreshTokenStore(), nil)

	user := &models.User{ID: 1, Email: "a@x.com", IsActive: true}
	pair, err := svc.IssueTokens(user)
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidAccessToken)
}

func TestVerifyAccessTokenWrongAlgorithm(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ALG", "HS512")
	hs512 := auth.NewAuthService(mocks.NewUserStore(), mocks.NewRefreshTokenStore(), nil)

	user := &models.User{ID: 1, Email: "a@x.com", IsActive: true}
	pair, err := hs512.IssueTokens(user)
	require.NoError(t, err)

	t.Setenv("JWT_ALG", "HS256")
	hs256 := auth.NewAuthService(mocks.NewUserStore(), mocks.NewRefreshTokenStore(), nil)

	_, err = hs256.VerifyAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, auth.ErrInvalidAccessToken)
}

func TestRefreshRotatesExactlyOnce(t *testing.T) {
	svc, _, tokens := newTestService(t)
	resp := registerUser(t, svc, "a@x.com")

	rotated, err := svc.Refresh(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	// The old secret is spent; a second rotation attempt must fail.
	_, err = svc.Refresh(resp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)

	// The replacement remains usable.
	_, err = svc.Refresh(rotated.RefreshToken)
	require.NoError(t, err)

	assert.NotContains(t, tokens.Hashes(), rotated.RefreshToken)
}

func TestRefreshUnknownToken(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Refresh("completely-unknown-token-value")
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestRefreshExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REFRESH_TOKEN_TTL", "-1h")
	users := mocks.NewUserStore()
	tokens := mocks.NewRefreshTokenStore()
	svc := auth.NewAuthService(users, tokens, nil)

	resp, err := svc.Register(&models.RegisterRequest{
		Name:     "Test User",
		Email:    "a@x.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(resp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestRefreshDeactivatedUser(t *testing.T) {
	svc, users, _ := newTestService(t)
	resp := registerUser(t, svc, "a@x.com")

	require.NoError(t, users.SetActive(resp.ID, false))

	_, err := svc.Refresh(resp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _, _ := newTestService(t)
	resp := registerUser(t, svc, "a@x.com")

	require.NoError(t, svc.Logout(resp.RefreshToken))
	require.NoError(t, svc.Logout(resp.RefreshToken))
	require.NoError(t, svc.Logout("never-issued-token"))

	_, err := svc.Refresh(resp.RefreshToken)
	assert.ErrorIs(t, err, auth.ErrInvalidRefreshToken)
}
