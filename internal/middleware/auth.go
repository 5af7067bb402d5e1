// internal/middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionLoggedInKey is the boolean flag set on successful login.
const SessionLoggedInKey = "logged_in"

// LoginRequired guards every inventory/sales route: without the session flag
// the wrapped handler never executes and the caller is sent to the login form.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		loggedIn, ok := session.Get(SessionLoggedInKey).(bool)
		if !ok || !loggedIn {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
