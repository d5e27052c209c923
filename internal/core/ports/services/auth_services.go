package services

import (
	"context"

	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/validation"
)

// AuthFormState is what the login and register pages render.
type AuthFormState struct {
	FieldErrors validation.FieldErrors
	Error       string
}

// AuthSvc owns the session lifecycle.
type AuthSvc interface {
	// Restore returns the session stored under sessionID or a fresh anonymous one.
	Restore(ctx context.Context, sessionID string) (*domain.Session, error)
	Login(ctx context.Context, session *domain.Session, form dto.LoginForm) (AuthFormState, error)
	// Register creates the account and then signs in with the same credentials.
	Register(ctx context.Context, session *domain.Session, form dto.RegisterForm) (AuthFormState, error)
	Logout(ctx context.Context, session *domain.Session) error
	IsAuthenticated(session *domain.Session) bool
}
