package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"jokebox/src/core/domain"
	"jokebox/src/core/usecase"
)

// CurrentUserKey is the context key holding the resolved *domain.User.
const CurrentUserKey = "current_user"

// CurrentUser resolves the session cookie to a user once per request and
// stores the result in the gin context. It never blocks the request: an
// anonymous, expired, or malformed session simply leaves no user set.
// Handlers read the outcome via GetCurrentUser instead of re-resolving the
// cookie themselves.
func CurrentUser(auth *usecase.AuthService, cookieName string, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, err := auth.CurrentUser(c.Request.Context(), token)
		if err != nil {
			// Storage failure: log and treat the request as anonymous
			// rather than failing a read-only page.
			log.Error("session resolution failed",
				"request_id", GetRequestID(c),
				"error", err,
			)
			c.Next()
			return
		}
		if user != nil {
			c.Set(CurrentUserKey, user)
		}

		c.Next()
	}
}

// GetCurrentUser returns the user resolved by CurrentUser, or nil.
func GetCurrentUser(c *gin.Context) *domain.User {
	if v, exists := c.Get(CurrentUserKey); exists {
		if user, ok := v.(*domain.User); ok {
			return user
		}
	}
	return nil
}
