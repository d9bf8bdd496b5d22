package middleware

import (
	"net/http"
	"strings"

	"driveline/config"

	"github.com/gin-gonic/gin"
)

// AdminAuthMiddleware guards the diagnostic endpoints with a static bearer
// token. This is an operational surface, not a production trust boundary.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := config.AppConfig.AdminToken
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Diagnostics are disabled"})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		if strings.TrimPrefix(authHeader, "Bearer ") != token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
