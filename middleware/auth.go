package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"jobportal/services"
	"jobportal/utils"
)

// Context keys set by Authenticate and read by controllers.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
)

// Authenticate validates the Bearer token and stores the caller's
// identity in the request context.
func Authenticate(jwtService *services.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.UnauthorizedError(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.UnauthorizedError(c, "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			utils.UnauthorizedError(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole is the single role gate used across all routes: the
// authenticated caller must hold the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actual, exists := c.Get(ContextRole)
		if !exists || actual != role {
			utils.ForbiddenError(c, "This action requires the "+role+" role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated user's id from the context.
func UserID(c *gin.Context) int {
	id, _ := c.Get(ContextUserID)
	userID, _ := id.(int)
	return userID
}

// Username returns the authenticated username from the context.
func Username(c *gin.Context) string {
	v, _ := c.Get(ContextUsername)
	username, _ := v.(string)
	return username
}

// Role returns the authenticated user's role from the context.
func Role(c *gin.Context) string {
	v, _ := c.Get(ContextRole)
	role, _ := v.(string)
	return role
}
