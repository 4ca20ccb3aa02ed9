package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartpark/parking-app/models"
)

// DashboardPath maps a role to its landing view.
func DashboardPath(role models.Role) string {
	if role == models.RoleAdmin {
		return "/admin-dashboard"
	}
	return "/dashboard"
}

// RequireRole gates a route group on a single role. A mismatched role is not
// an error: the caller is silently redirected to their own dashboard.
func RequireRole(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		role, ok := roleValue.(models.Role)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if role != required {
			c.Redirect(http.StatusSeeOther, DashboardPath(role))
			c.Abort()
			return
		}

		c.Next()
	}
}
