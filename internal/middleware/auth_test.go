package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Anieto86/LabLink/internal/middleware"
	"github.com/Anieto86/LabLink/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	identity *models.Identity
	err      error
}

func (v stubVerifier) VerifyAccessToken(string) (*models.Identity, error) {
	return v.identity, v.err
}

func setupRouter(verifier middleware.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.RequireAuth(verifier), func(c *gin.Context) {
		identity := middleware.IdentityFromContext(c)
		c.JSON(http.StatusOK, identity)
	})
	return r
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r := setupRouter(stubVerifier{identity: &models.Identity{UserID: 1}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Missing token")
}

func TestRequireAuthBadScheme(t *testing.T) {
	r := setupRouter(stubVerifier{identity: &models.Identity{UserID: 1}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	r := setupRouter(stubVerifier{err: errors.New("invalid or expired token")})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	r := setupRouter(stubVerifier{identity: &models.Identity{UserID: 42, Email: "a@x.com"}})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42,"email":"a@x.com"}`, w.Body.String())
}

func TestIdentityFromContextAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Nil(t, middleware.IdentityFromContext(c))
}
