package repositories

import (
	"context"

	"github.com/SscSPs/business_panel/internal/core/domain"
)

// Authenticator exchanges credentials for a backend token. It needs no session.
type Authenticator interface {
	Login(ctx context.Context, credentials domain.Credentials) (token string, user *domain.User, err error)
	Register(ctx context.Context, registration domain.Registration) error
}

// ProfileReader reads the signed-in user.
type ProfileReader interface {
	GetProfile(ctx context.Context) (*domain.Profile, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
}

// ProfileWriter changes the signed-in user.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error)
	ChangePassword(ctx context.Context, change domain.PasswordChange) error
}

// ProfileRepository combines profile reads and writes.
type ProfileRepository interface {
	ProfileReader
	ProfileWriter
}
