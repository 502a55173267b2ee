package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rfinnegan/account-portal/internal/session"
)

// CtxVisitorIDKey holds the anonymous visitor id in the Gin context.
const CtxVisitorIDKey = "visitorID"

// VisitorSession ensures every request carries a visitor id cookie keying
// flash notices and the pending redirect target.
func VisitorSession(cookieDomain string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(session.CookieName)
		if err != nil || sid == "" {
			sid, err = session.NewVisitorID()
			if err != nil {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(session.CookieName, sid, 0, "/", cookieDomain, secure, true)
		}
		c.Set(CtxVisitorIDKey, sid)
		c.Next()
	}
}

// VisitorID returns the visitor id set by VisitorSession.
func VisitorID(c *gin.Context) string {
	return c.GetString(CtxVisitorIDKey)
}
