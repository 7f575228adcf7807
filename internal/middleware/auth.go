package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "registro/internal/errors"
	"registro/internal/models"
	"registro/internal/services"
)

// SessionCookieName is the cookie carrying the session token, valued
// "Bearer <token>".
const SessionCookieName = "access_token"

const contextKeyUser = "current_user"

// TokenVerifier verifies a session token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// RequireAuth guards a route behind the session cookie. Any failure --
// missing cookie, malformed value, bad signature, expired token,
// unknown subject -- sends the visitor to the login page instead of a
// raw 401.
func RequireAuth(tokens TokenVerifier, authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(SessionCookieName)
		if err != nil {
			apierrors.RedirectToLogin(c)
			return
		}

		parts := strings.Split(value, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			apierrors.RedirectToLogin(c)
			return
		}

		subject, err := tokens.Verify(parts[1])
		if err != nil {
			apierrors.RedirectToLogin(c)
			return
		}

		user, err := authService.GetUserByUsername(subject)
		if err != nil {
			apierrors.RedirectToLogin(c)
			return
		}

		c.Set(contextKeyUser, user)
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user stored by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(contextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
