package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/business_panel/internal/core/domain"
)

// SessionReader loads browser sessions.
type SessionReader interface {
	// FindSessionByID returns apperrors.ErrNotFound for unknown or expired sessions.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)
}

// SessionWriter stores browser sessions.
type SessionWriter interface {
	SaveSession(ctx context.Context, session domain.Session) error
	DeleteSession(ctx context.Context, sessionID string) error
	// DeleteExpiredSessions removes sessions that expired before now and returns how many.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// SessionRepositoryFacade combines all session operations.
type SessionRepositoryFacade interface {
	SessionReader
	SessionWriter
}
