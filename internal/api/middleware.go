package api

import (
	"net/http"
	"net/url"

	"vidhost/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the signed admin session token.
const SessionCookieName = "vidhost_session"

// SessionMiddleware requires a valid admin session cookie and redirects to the
// login page otherwise.
func SessionMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || authService.ValidateSession(token) != nil {
			redirectWithError(c, "/admin", "Please log in first")
			c.Abort()
			return
		}
		c.Next()
	}
}

// MaxBodySize caps the request body. Oversized uploads fail once the handler
// reads past the limit, before any workflow code runs.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

// redirectWithError sends the browser back to location with a human-readable
// error message in the query string. Templates render it flash-style.
func redirectWithError(c *gin.Context, location, message string) {
	c.Redirect(http.StatusFound, location+"?error="+url.QueryEscape(message))
}

// redirectWithSuccess is the success counterpart of redirectWithError.
func redirectWithSuccess(c *gin.Context, location, message string) {
	c.Redirect(http.StatusFound, location+"?message="+url.QueryEscape(message))
}
