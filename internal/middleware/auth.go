// Package middleware gates routes on the session the login handler
// populated: a backend bearer token plus the role the backend resolved.
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Session keys. The token is the backend's bearer credential; role is
// one of models.RoleAdmin / models.RoleApplicant.
const (
	SessionKeyToken = "token"
	SessionKeyRole  = "role"
	SessionKeyEmail = "email"
)

// RequireAuth redirects anonymous users to the login page and, when
// roles are given, renders a 403 page for authenticated users whose
// role is not among them.
func RequireAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		token, _ := sess.Get(SessionKeyToken).(string)
		if token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if len(roles) > 0 {
			role, _ := sess.Get(SessionKeyRole).(string)
			allowed := false
			for _, r := range roles {
				if r == role {
					allowed = true
					break
				}
			}
			if !allowed {
				c.HTML(http.StatusForbidden, "error.html", gin.H{
					"Status":  http.StatusForbidden,
					"Message": "You do not have permission to view this page",
				})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// Token pulls the backend bearer token out of the current session,
// empty when anonymous.
func Token(c *gin.Context) string {
	token, _ := sessions.Default(c).Get(SessionKeyToken).(string)
	return token
}

// Role pulls the session role, empty when anonymous.
func Role(c *gin.Context) string {
	role, _ := sessions.Default(c).Get(SessionKeyRole).(string)
	return role
}
