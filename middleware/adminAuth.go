package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rhiclean/services/auth"
)

// AdminAuth guards the admin-only booking endpoints. The credential is
// a capability stub checked by prefix (see services/auth), so this gate
// distinguishes privileged from public operations without being a real
// security boundary.
func AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if !auth.Authorize(token) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Set("adminToken", token)
		c.Set("isAdmin", true)
		c.Next()
	}
}
