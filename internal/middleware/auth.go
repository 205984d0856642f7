package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"intranet-api/internal/domain"
	"intranet-api/internal/response"
)

// TokenValidator checks a bearer token and returns the caller's identity
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.Role, error)
}

// AuthMiddleware validates the bearer token from the Authorization header
// and stores the caller's identity on the context
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "No authorization header")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid authorization header format")
			return
		}

		tokenString := parts[1]
		userID, role, err := validator.ValidateToken(c.Request.Context(), tokenString)
		if err != nil {
			response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid token")
			return
		}

		c.Set("user_id", userID)
		c.Set("role", role)
		c.Set("token", tokenString)
		c.Next()
	}
}

// AdminOnly rejects callers without the admin role. Must run after
// AuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok || role != domain.RoleAdmin {
			response.SendError(c, http.StatusForbidden, response.ErrCodeForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user's ID from the context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}

// GetRole returns the authenticated user's role from the context
func GetRole(c *gin.Context) (domain.Role, bool) {
	value, exists := c.Get("role")
	if !exists {
		return "", false
	}
	role, ok := value.(domain.Role)
	return role, ok
}

// GetToken returns the raw bearer token from the context
func GetToken(c *gin.Context) (string, bool) {
	value, exists := c.Get("token")
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}
