package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSession_IsAuthenticated(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		session *domain.Session
		want    bool
	}{
		{name: "nil session", session: nil, want: false},
		{name: "anonymous", session: domain.NewSession("s1", now, time.Hour), want: false},
		{name: "signed in", session: &domain.Session{Token: "t", ExpiresAt: now.Add(time.Minute)}, want: true},
		{name: "expired", session: &domain.Session{Token: "t", ExpiresAt: now.Add(-time.Minute)}, want: false},
		{name: "no expiry", session: &domain.Session{Token: "t"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.IsAuthenticated(now))
		})
	}
}

func TestSession_SignInKeepsEarlierExpiry(t *testing.T) {
	now := time.Now()
	s := domain.NewSession("s1", now, time.Hour)

	s.SignIn("token", &domain.User{Email: "a@b.pl"}, now.Add(24*time.Hour))
	assert.Equal(t, now.Add(time.Hour), s.ExpiresAt)

	s.SignIn("token", nil, now.Add(10*time.Minute))
	assert.Equal(t, now.Add(10*time.Minute), s.ExpiresAt)

	s.SignOut()
	assert.False(t, s.IsAuthenticated(now))
	assert.Nil(t, s.User)
}
