package middleware

import (
	"net/http"
	"strings"

	"github.com/Anieto86/LabLink/internal/models"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// TokenVerifier verifies a bearer token and returns the identity it
// carries. Verification must be stateless: protected routes never pay a
// database round trip.
type TokenVerifier interface {
	VerifyAccessToken(token string) (*models.Identity, error)
}

// RequireAuth extracts and verifies the bearer token and attaches the
// authenticated identity to the request context, or fails closed with 401
// before the handler runs.
func RequireAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Missing token"})
			return
		}

		identity, err := verifier.VerifyAccessToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid or expired token"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFromContext returns the authenticated identity attached by
// RequireAuth, or nil when the request is anonymous.
func IdentityFromContext(c *gin.Context) *models.Identity {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*models.Identity)
	if !ok {
		return nil
	}
	return identity
}
