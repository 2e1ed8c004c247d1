package http

import (
	"errors"
	"time"

	"inkwell/internal/usecase"
	"inkwell/pkg/logger"
	"inkwell/pkg/session"

	"github.com/gin-gonic/gin"
)

const SessionCookie = "session_id"

// SessionContext attaches the current user, the pending flash message and
// the request timestamp to every request. Visitors without a valid session
// cookie get a fresh anonymous session so flash messages always have a
// place to live.
func SessionContext(store session.Store, authUseCase usecase.AuthUseCase, ttl time.Duration, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, _ := c.Cookie(SessionCookie)

		var userID string
		if token != "" {
			uid, err := store.UserID(ctx, token)
			switch {
			case errors.Is(err, session.ErrNotFound):
				token = ""
			case err != nil:
				log.Error("Failed to resolve session: %v", err)
				token = ""
			default:
				userID = uid
			}
		}

		if token == "" {
			created, err := store.Create(ctx)
			if err != nil {
				log.Error("Failed to create session: %v", err)
				c.Next()
				return
			}
			token = created
			c.SetCookie(SessionCookie, token, int(ttl.Seconds()), "/", "", false, true)
		}
		c.Set("session_token", token)

		if userID != "" {
			if user, err := authUseCase.GetUser(userID); err == nil {
				c.Set("user", user)
			}
		}

		if flash, err := store.PopFlash(ctx, token); err == nil && flash != "" {
			c.Set("flash", flash)
		}

		c.Set("request_time", time.Now().Format(time.RFC1123))

		c.Next()
	}
}
