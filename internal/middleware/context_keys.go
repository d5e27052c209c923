package middleware

import (
	"context"

	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	sessionKey  = contextKey("session")
	viewportKey = contextKey("viewportWidth")
)

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, session)
}

// GetSessionFromContext retrieves the browser session stored by SessionMiddleware.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	if val, exists := c.Get(string(sessionKey)); exists {
		session, ok := val.(*domain.Session)
		return session, ok && session != nil
	}
	session, ok := c.Request.Context().Value(sessionKey).(*domain.Session)
	return session, ok && session != nil
}

// GetUserIDFromContext returns the id of the signed-in user, if any.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	session, ok := GetSessionFromContext(c)
	if !ok || session.User == nil || session.User.ID.IsZero() {
		return "", false
	}
	return session.User.ID.String(), true
}
