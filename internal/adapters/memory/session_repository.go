// Package memory keeps sessions in process memory. Sessions are lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
)

type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	now      func() time.Time
}

var _ portsrepo.SessionRepositoryFacade = (*SessionRepository)(nil)

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]domain.Session), now: time.Now}
}

// WithClock replaces the clock used to hide expired sessions.
func (r *SessionRepository) WithClock(now func() time.Time) *SessionRepository {
	r.now = now
	return r
}

func (r *SessionRepository) FindSessionByID(_ context.Context, sessionID string) (*domain.Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[sessionID]
	r.mu.RUnlock()
	if !ok || !s.ExpiresAt.After(r.now()) {
		return nil, apperrors.ErrNotFound
	}
	return cloneSession(s), nil
}

func (r *SessionRepository) SaveSession(_ context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = *cloneSession(session)
	return nil
}

func (r *SessionRepository) DeleteSession(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[sessionID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.sessions, sessionID)
	return nil
}

func (r *SessionRepository) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.sessions {
		if !s.ExpiresAt.After(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

func (r *SessionRepository) Ping(context.Context) error { return nil }

// cloneSession copies the cached user so callers never share it with the store.
func cloneSession(s domain.Session) *domain.Session {
	if s.User != nil {
		user := *s.User
		s.User = &user
	}
	return &s
}
