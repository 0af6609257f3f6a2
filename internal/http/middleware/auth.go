package middleware

import (
	"context"

	"ats/internal/auth"
	"ats/internal/domain/models"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

// SessionAuthenticator resolves the user behind a refresh cookie and its XSRF
// companion.
type SessionAuthenticator interface {
	Authenticate(ctx context.Context, refreshCookie, xsrfHeader string) (models.User, error)
}

// RequireSession rejects requests without a valid token pair and stores the
// authenticated user in the context.
func RequireSession(a SessionAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(auth.CookieName)
		u, err := a.Authenticate(c.Request.Context(), cookie, c.GetHeader(auth.XSRFHeader))
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		c.Set(currentUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the user stored by RequireSession.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return models.User{}, false
	}
	u, ok := v.(models.User)
	return u, ok
}
