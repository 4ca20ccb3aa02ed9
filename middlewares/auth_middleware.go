package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smartpark/parking-app/utils"
)

// SessionCookie carries the signed token for browser flows; API clients may
// send the same token as a bearer header instead.
const SessionCookie = "session"

// AuthMiddleware resolves the session token and puts user_id and role into
// the request context. Anything unauthenticated is sent back to the login
// entry point before any role evaluation happens.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""
		if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
			token = strings.TrimPrefix(header, "Bearer ")
		}
		if token == "" {
			token, _ = c.Cookie(SessionCookie)
		}

		if token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil || claims.UserID == 0 {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
