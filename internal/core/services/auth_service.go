package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
	"github.com/SscSPs/business_panel/internal/validation"
	"github.com/google/uuid"
)

const (
	DefaultSessionTTL = 12 * time.Hour

	msgLoginFailed    = "Nieprawidłowy email lub hasło"
	msgRegisterFailed = "Błąd rejestracji. Spróbuj ponownie."
	msgSignInAfterReg = "Konto zostało utworzone, ale logowanie nie powiodło się. Zaloguj się."
)

// AuthService implements portssvc.AuthSvc on top of a session store and the backend auth endpoints.
type AuthService struct {
	BaseService
	sessions portsrepo.SessionRepositoryFacade
	auth     portsrepo.Authenticator
	now      func() time.Time
	ttl      time.Duration
	newID    func() string
}

// AuthOption configures an AuthService.
type AuthOption func(*AuthService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) AuthOption {
	return func(s *AuthService) { s.now = now }
}

// WithSessionTTL sets how long a signed-in session lives at most.
func WithSessionTTL(ttl time.Duration) AuthOption {
	return func(s *AuthService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithSessionIDs replaces the session id generator.
func WithSessionIDs(newID func() string) AuthOption {
	return func(s *AuthService) { s.newID = newID }
}

func NewAuthService(sessions portsrepo.SessionRepositoryFacade, auth portsrepo.Authenticator, opts ...AuthOption) *AuthService {
	s := &AuthService{
		sessions: sessions,
		auth:     auth,
		now:      time.Now,
		ttl:      DefaultSessionTTL,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.AuthSvc = (*AuthService)(nil)

func (s *AuthService) anonymous() *domain.Session {
	return domain.NewSession(s.newID(), s.now(), s.ttl)
}

// Restore looks the cookie up. Unknown and expired sessions yield a fresh
// anonymous session; store failures are returned.
func (s *AuthService) Restore(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return s.anonymous(), nil
	}
	session, err := s.sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.anonymous(), nil
		}
		s.LogError(ctx, err, "Failed to restore session")
		return nil, fmt.Errorf("restoring session: %w", err)
	}
	if !session.IsAuthenticated(s.now()) {
		s.LogDebug(ctx, "Stored session expired", slog.String("session_id", sessionID))
		if err := s.sessions.DeleteSession(ctx, sessionID); err != nil {
			s.LogWarn(ctx, "Failed to delete expired session", slog.String("error", err.Error()))
		}
		return s.anonymous(), nil
	}
	return session, nil
}

func (s *AuthService) IsAuthenticated(session *domain.Session) bool {
	return session.IsAuthenticated(s.now())
}

func (s *AuthService) Login(ctx context.Context, session *domain.Session, form dto.LoginForm) (portssvc.AuthFormState, error) {
	if errs := validation.Struct(&form); len(errs) > 0 {
		return portssvc.AuthFormState{FieldErrors: errs}, apperrors.ErrValidation
	}

	token, user, err := s.auth.Login(ctx, mapping.CredentialsFromForm(form))
	if err != nil {
		s.LogWarn(ctx, "Login rejected", slog.String("error", err.Error()))
		return portssvc.AuthFormState{Error: msgLoginFailed}, fmt.Errorf("login: %w", err)
	}

	if err := s.signIn(ctx, session, token, user); err != nil {
		return portssvc.AuthFormState{Error: msgLoginFailed}, err
	}
	s.LogInfo(ctx, "User signed in", slog.String("session_id", session.ID))
	return portssvc.AuthFormState{}, nil
}

func (s *AuthService) Register(ctx context.Context, session *domain.Session, form dto.RegisterForm) (portssvc.AuthFormState, error) {
	if errs := validation.Struct(&form); len(errs) > 0 {
		return portssvc.AuthFormState{FieldErrors: errs}, apperrors.ErrValidation
	}

	registration := mapping.RegistrationFromForm(form)
	if err := s.auth.Register(ctx, registration); err != nil {
		s.LogWarn(ctx, "Registration rejected", slog.String("error", err.Error()))
		msg := msgRegisterFailed
		if serverMsg, ok := apperrors.ServerMessage(err); ok {
			msg = serverMsg
		}
		return portssvc.AuthFormState{Error: msg}, fmt.Errorf("register: %w", err)
	}

	token, user, err := s.auth.Login(ctx, domain.Credentials{Email: registration.Email, Password: registration.Password})
	if err != nil {
		s.LogWarn(ctx, "Sign-in after registration failed", slog.String("error", err.Error()))
		return portssvc.AuthFormState{Error: msgSignInAfterReg}, fmt.Errorf("login after register: %w", err)
	}
	if err := s.signIn(ctx, session, token, user); err != nil {
		return portssvc.AuthFormState{Error: msgSignInAfterReg}, err
	}
	s.LogInfo(ctx, "User registered", slog.String("session_id", session.ID))
	return portssvc.AuthFormState{}, nil
}

// signIn rotates the session id, attaches the token and stores the session.
func (s *AuthService) signIn(ctx context.Context, session *domain.Session, token string, user *domain.User) error {
	previousID := session.ID
	now := s.now()

	signedIn := domain.NewSession(s.newID(), now, s.ttl)
	signedIn.SignIn(token, user, utils.TokenExpiry(token))
	if err := s.sessions.SaveSession(ctx, *signedIn); err != nil {
		s.LogError(ctx, err, "Failed to store session")
		return fmt.Errorf("storing session: %w", err)
	}
	if previousID != "" {
		if err := s.sessions.DeleteSession(ctx, previousID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Failed to delete previous session", slog.String("error", err.Error()))
		}
	}
	*session = *signedIn
	return nil
}

// Logout forgets the token locally and in the store. The backend keeps no server-side session.
func (s *AuthService) Logout(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return nil
	}
	id := session.ID
	session.SignOut()
	if err := s.sessions.DeleteSession(ctx, id); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to delete session", slog.String("session_id", id))
		return fmt.Errorf("deleting session: %w", err)
	}
	s.LogInfo(ctx, "User signed out", slog.String("session_id", id))
	return nil
}

// PurgeExpiredSessions removes expired sessions from the store.
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := s.sessions.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("purging sessions: %w", err)
	}
	if n > 0 {
		s.LogInfo(ctx, "Expired sessions purged", slog.Int64("count", n))
	}
	return n, nil
}
