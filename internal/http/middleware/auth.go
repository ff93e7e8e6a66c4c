package middleware

import (
	"net/http"
	"strings"

	"travels/internal/domain/models"
	"travels/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	userKey   = "auth_user"
	userIDKey = "auth_user_id"
)

// Auth validates the Bearer token and resolves it to a current user record.
// A missing, malformed or expired token aborts with 401, as does a token
// whose user no longer exists.
func Auth(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		user, err := auth.ResolveToken(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(userKey, user)
		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by Auth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}

// CurrentUserID returns the authenticated user's ID, or "" outside Auth.
func CurrentUserID(c *gin.Context) string {
	if s, ok := c.Get(userIDKey); ok {
		if id, ok := s.(string); ok {
			return id
		}
	}
	return ""
}
