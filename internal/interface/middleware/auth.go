package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rfinnegan/account-portal/internal/session"
	"github.com/rfinnegan/account-portal/pkg/helpers"
)

// Context keys set for authenticated requests.
const (
	CtxAccountIDKey = "accountID"
	CtxClaimsKey    = "accountClaims"
)

// RequireAuth validates the session cookie and injects the account claims
// into the context. Unauthenticated visitors have their intended URL recorded
// as the pending redirect target, then are bounced to the login page.
func RequireAuth(issuer *helpers.TokenIssuer, bag *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookieName)
		if err == nil && token != "" {
			if claims, perr := issuer.Parse(token); perr == nil {
				c.Set(CtxAccountIDKey, claims.AccountID)
				c.Set(CtxClaimsKey, claims)
				c.Next()
				return
			}
		}
		if sid := VisitorID(c); sid != "" {
			_ = bag.SetPendingRedirect(c.Request.Context(), sid, c.Request.URL.RequestURI())
		}
		c.Redirect(http.StatusFound, "/account/login")
		c.Abort()
	}
}

// Claims returns the session claims set by RequireAuth, if any.
func Claims(c *gin.Context) *helpers.AccountClaims {
	if v, ok := c.Get(CtxClaimsKey); ok {
		if claims, ok := v.(*helpers.AccountClaims); ok {
			return claims
		}
	}
	return nil
}
