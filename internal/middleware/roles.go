package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SpinCityEvents/gig-manager/internal/models"
)

// RequireRole gates a route group to an explicit role set.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role, _ := c.MustGet(ContextUserRole).(string)
		if !allowed[models.Role(role)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient_role"})
			return
		}
		c.Next()
	}
}

// RequireBackOffice admits owners and managers.
func RequireBackOffice() gin.HandlerFunc {
	return RequireRole(models.RoleOwner, models.RoleManager)
}

// RequireOwner admits owners only (settings, user management).
func RequireOwner() gin.HandlerFunc {
	return RequireRole(models.RoleOwner)
}
