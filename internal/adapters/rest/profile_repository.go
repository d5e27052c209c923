package rest

import (
	"context"
	"fmt"

	"github.com/SscSPs/business_panel/internal/apiclient"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
)

const (
	profilePath   = "/api/users/profile"
	passwordPath  = "/api/users/profile/password"
	currentUserAt = "/api/auth/me"
)

type ProfileRepository struct {
	BaseRepository
}

var _ portsrepo.ProfileRepository = (*ProfileRepository)(nil)

func newProfileRepository(client *apiclient.Client) *ProfileRepository {
	return &ProfileRepository{BaseRepository: BaseRepository{Client: client}}
}

func (r *ProfileRepository) GetProfile(ctx context.Context) (*domain.Profile, error) {
	var res dto.ProfileResponse
	if err := r.Client.Get(ctx, profilePath, nil, &res); err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	profile := mapping.ToDomainProfile(res)
	return &profile, nil
}

func (r *ProfileRepository) CurrentUser(ctx context.Context) (*domain.User, error) {
	var res dto.UserResponse
	if err := r.Client.Get(ctx, currentUserAt, nil, &res); err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}
	user := mapping.ToDomainUser(res)
	return &user, nil
}

// UpdateProfile returns the profile echoed by the backend, or the sent one
// when the answer carried none.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	var res dto.ProfileUpdateResponse
	if err := r.Client.Put(ctx, profilePath, mapping.ToProfileRequest(profile), &res); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	if res.User == nil {
		return &profile, nil
	}
	updated := mapping.ToDomainProfile(*res.User)
	return &updated, nil
}

func (r *ProfileRepository) ChangePassword(ctx context.Context, change domain.PasswordChange) error {
	if err := r.Client.Put(ctx, passwordPath, mapping.ToPasswordRequest(change), nil); err != nil {
		return fmt.Errorf("changing password: %w", err)
	}
	return nil
}
