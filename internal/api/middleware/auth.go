package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/yatube-dev/yatube/internal/model"
	"github.com/yatube-dev/yatube/internal/service"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "yatube_session"

const userKey = "currentUser"

// LoginPath is where unauthenticated callers are sent, with the original
// path preserved in the next parameter.
const LoginPath = "/auth/login/"

// CurrentUser resolves the session cookie into a user for every request.
// Invalid or expired tokens just leave the request anonymous.
func CurrentUser(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			if user, err := auth.UserFromToken(c.Request.Context(), token); err == nil {
				c.Set(userKey, user)
			}
		}
		c.Next()
	}
}

// UserFrom returns the authenticated user, or nil for guests.
func UserFrom(c *gin.Context) *model.User {
	if v, ok := c.Get(userKey); ok {
		return v.(*model.User)
	}
	return nil
}

// RequireAuth redirects guests to the login page with next set to the
// requested path.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFrom(c) != nil {
			c.Next()
			return
		}
		q := url.Values{"next": {c.Request.URL.Path}}
		c.Redirect(http.StatusFound, LoginPath+"?"+q.Encode())
		c.Abort()
	}
}
