package middleware

import (
	"net/http"

	"github.com/backoffice/backend/internal/domain/identity"
	"github.com/gin-gonic/gin"
)

// RequireRoles aborts with 403 unless the authenticated caller's role is in
// the allowed set. It must run after JWT authentication.
func RequireRoles(allowed identity.RoleSet) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := GetJWTRole(c)
		if role == "" || !allowed.Allows(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Insufficient role for this operation",
				},
			})
			return
		}
		c.Next()
	}
}
