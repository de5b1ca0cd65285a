// Package middleware provides Gin middleware for the staff-ui web server.
package middleware

import (
	"net/http"

	"staff-ui/web/session"

	"github.com/gin-gonic/gin"
)

// RequireLogin gates a route group behind an authenticated session.
// Unauthenticated requests are redirected to the login page and never reach
// the handler body.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLogin(c) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
