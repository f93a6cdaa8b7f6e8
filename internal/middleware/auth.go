package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"medical-backend-server/internal/config"
	"medical-backend-server/internal/utils"
)

// AuthMiddleware creates a middleware for JWT authentication. It only
// establishes WHO is calling; the user record (and with it the role) is
// loaded from the database by each handler, so the token never carries
// stale role information.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := utils.ValidateToken(tokenString, cfg.JWTSecret)
		if err != nil {
			utils.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("userID", claims.UserID)

		c.Next()
	}
}

// GetUserIDFromContext returns the authenticated user id set by AuthMiddleware.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	idStr, ok := userID.(string)
	return idStr, ok
}
