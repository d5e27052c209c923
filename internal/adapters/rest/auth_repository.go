package rest

import (
	"context"
	"fmt"

	"github.com/SscSPs/business_panel/internal/apiclient"
	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
)

const (
	loginPath    = "/api/auth/login"
	registerPath = "/api/auth/register"
)

// AuthRepository talks to the unauthenticated auth endpoints.
type AuthRepository struct {
	BaseRepository
}

var _ portsrepo.Authenticator = (*AuthRepository)(nil)

func NewAuthRepository(client *apiclient.Client) *AuthRepository {
	return &AuthRepository{BaseRepository: BaseRepository{Client: client}}
}

func (r *AuthRepository) Login(ctx context.Context, credentials domain.Credentials) (string, *domain.User, error) {
	var res dto.LoginResponse
	if err := r.Client.Post(ctx, loginPath, mapping.ToLoginRequest(credentials), &res); err != nil {
		return "", nil, fmt.Errorf("logging in: %w", err)
	}
	token := res.BearerToken()
	if token == "" {
		return "", nil, fmt.Errorf("%w: login response carried no token", apperrors.ErrTransport)
	}
	if res.User == nil {
		return token, nil, nil
	}
	user := mapping.ToDomainUser(*res.User)
	return token, &user, nil
}

func (r *AuthRepository) Register(ctx context.Context, registration domain.Registration) error {
	if err := r.Client.Post(ctx, registerPath, mapping.ToRegisterRequest(registration), nil); err != nil {
		return fmt.Errorf("registering: %w", err)
	}
	return nil
}
