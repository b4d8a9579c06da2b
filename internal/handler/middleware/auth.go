package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"purchase-approval/internal/domain/identity"
	"purchase-approval/internal/handler/httperr"
	"purchase-approval/internal/pkg/cookie"
	"purchase-approval/internal/pkg/errs"
	"purchase-approval/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxIdentityKey = "identity"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Unauthorized", nil)
			return
		}

		id, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
			return
		}

		setIdentity(c, id)
		c.Next()
	}
}

// OptionalAuth attaches the caller identity when a valid session is present and never aborts.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		id, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setIdentity(c, id)
		c.Next()
	}
}

func GetIdentity(c *gin.Context) (identity.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return identity.Identity{}, false
	}

	id, ok := v.(identity.Identity)
	return id, ok && !id.IsZero()
}

// session cookie first, then a bearer header for non-browser clients
func extractToken(c *gin.Context) string {
	if token := cookie.GetSessionToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func setIdentity(c *gin.Context, id identity.Identity) {
	c.Set(ctxIdentityKey, id)
	c.Set("jwt_claims", map[string]any{
		"email": id.PrimaryEmail(),
		"name":  id.DisplayName(),
	})
}
