package domain

import "time"

// Session is the server-side state of one browser. It starts anonymous and
// becomes authenticated once a backend token is attached.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"-"` // Bearer token issued by the backend
	User      *User     `json:"user,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSession returns an anonymous session.
func NewSession(id string, now time.Time, ttl time.Duration) *Session {
	return &Session{ID: id, CreatedAt: now, ExpiresAt: now.Add(ttl)}
}

// IsAuthenticated is true while a token is present and the session has not expired.
func (s *Session) IsAuthenticated(now time.Time) bool {
	if s == nil || s.Token == "" {
		return false
	}
	return s.ExpiresAt.IsZero() || now.Before(s.ExpiresAt)
}

// SignIn attaches a token. expiresAt never extends the session beyond what it already allows.
func (s *Session) SignIn(token string, user *User, expiresAt time.Time) {
	s.Token = token
	s.User = user
	if !expiresAt.IsZero() && (s.ExpiresAt.IsZero() || expiresAt.Before(s.ExpiresAt)) {
		s.ExpiresAt = expiresAt
	}
}

// SignOut drops the token and the cached user.
func (s *Session) SignOut() {
	s.Token = ""
	s.User = nil
}
