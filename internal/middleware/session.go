package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// SessionRestorer loads the session named by a cookie.
type SessionRestorer interface {
	Restore(ctx context.Context, sessionID string) (*domain.Session, error)
}

// SessionCookie describes the cookie carrying the session id.
type SessionCookie struct {
	Name   string
	Secure bool
}

// SessionMiddleware restores the browser session before any handler runs.
// Handlers read it with GetSessionFromContext.
func SessionMiddleware(restorer SessionRestorer, cookie SessionCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromContext(c)
		id, _ := c.Cookie(cookie.Name)

		session, err := restorer.Restore(c.Request.Context(), id)
		if err != nil {
			logger.Error("Failed to restore session", slog.String("error", err.Error()))
			c.AbortWithStatus(http.StatusServiceUnavailable)
			_, _ = c.Writer.WriteString("Sesja jest chwilowo niedostępna. Spróbuj ponownie.")
			return
		}
		if id != "" && id != session.ID {
			// the cookie names a session that is gone
			ClearSessionCookie(c, cookie)
		}

		c.Set(string(sessionKey), session)
		c.Request = c.Request.WithContext(WithSession(c.Request.Context(), session))
		c.Next()
	}
}

// SetSessionCookie points the browser at session.
func SetSessionCookie(c *gin.Context, cookie SessionCookie, session *domain.Session) {
	maxAge := 0
	if !session.ExpiresAt.IsZero() {
		maxAge = int(time.Until(session.ExpiresAt).Seconds())
		if maxAge <= 0 {
			maxAge = -1
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookie.Name, session.ID, maxAge, "/", "", cookie.Secure, true)
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(c *gin.Context, cookie SessionCookie) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, true)
}
