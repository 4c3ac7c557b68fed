package middleware

import (
	"context"
	"net/http"
	"strings"

	"echocast/internal/domain"
	"echocast/internal/pkg/jwt"
	"echocast/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserFinder looks up the account a verified token subject refers to.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Authenticate resolves the bearer token into a user and stores it on the
// context. Every failure — missing header, bad format, invalid or expired
// token, account gone — aborts with the same 401 shape so callers cannot
// distinguish the cause.
func Authenticate(jwtService *jwt.Service, users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "AUTH_HEADER_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Error(c, http.StatusUnauthorized, "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		subject, err := jwtService.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), subject)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Next()
	}
}

// CurrentUser returns the user resolved by Authenticate, or nil when the
// middleware did not run on this route.
func CurrentUser(c *gin.Context) *domain.User {
	v, exists := c.Get("user")
	if !exists {
		return nil
	}
	user, ok := v.(*domain.User)
	if !ok {
		return nil
	}
	return user
}
