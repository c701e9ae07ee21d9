package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ContextSubject = "auth_subject"
	ContextRole    = "auth_role"
)

// RequireRoles validates the bearer token and admits only the listed
// roles. Subject and role land in the gin context for handlers.
func RequireRoles(secret string, roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "missing_token", "message": "authorization header required"})
			return
		}
		sub, role, err := VerifyToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "invalid_token", "message": "token is invalid or expired"})
			return
		}
		if !allowed[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": "forbidden", "message": "insufficient role"})
			return
		}
		c.Set(ContextSubject, sub)
		c.Set(ContextRole, role)
		c.Next()
	}
}
