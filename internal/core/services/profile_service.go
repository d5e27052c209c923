package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/business_panel/internal/core/ports/services"
	"github.com/SscSPs/business_panel/internal/dto"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
	"github.com/SscSPs/business_panel/internal/validation"
)

const (
	msgProfileLoadFailed = "Nie udało się pobrać profilu"
	msgProfileSaved      = "Profil został zaktualizowany"
	msgProfileSaveFailed = "Nie udało się zaktualizować profilu"
)

type profileService struct {
	BaseService
	repo portsrepo.ProfileRepository
}

func NewProfileService(repo portsrepo.ProfileRepository) portssvc.ProfileSvc {
	return &profileService{repo: repo}
}

var _ portssvc.ProfileSvc = (*profileService)(nil)

func (s *profileService) Load(ctx context.Context) (portssvc.ProfileState, error) {
	profile, err := s.repo.GetProfile(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load profile")
		return portssvc.ProfileState{Error: msgProfileLoadFailed}, fmt.Errorf("loading profile: %w", err)
	}
	return portssvc.ProfileState{Form: mapping.ToProfileForm(*profile)}, nil
}

// Save sends the profile only when it differs from the stored one and the
// password only when it was filled in.
func (s *profileService) Save(ctx context.Context, form dto.ProfileForm) (portssvc.ProfileState, error) {
	state := portssvc.ProfileState{Form: form}
	if errs := validation.Struct(&form); len(errs) > 0 {
		state.FieldErrors = errs
		return state, apperrors.ErrValidation
	}

	current, err := s.repo.GetProfile(ctx)
	if err != nil {
		return s.saveFailed(ctx, state, err)
	}

	updated := mapping.ProfileFromForm(form)
	if updated != *current {
		stored, err := s.repo.UpdateProfile(ctx, updated)
		if err != nil {
			return s.saveFailed(ctx, state, err)
		}
		if stored != nil {
			updated = *stored
		}
		s.LogInfo(ctx, "Profile updated")
	}

	if form.CurrentPassword != "" && form.NewPassword != "" {
		change := domain.PasswordChange{CurrentPassword: form.CurrentPassword, NewPassword: form.NewPassword}
		if err := s.repo.ChangePassword(ctx, change); err != nil {
			state.Form = mapping.ToProfileForm(updated)
			return s.saveFailed(ctx, state, err)
		}
		s.LogInfo(ctx, "Password changed")
	}

	return portssvc.ProfileState{Form: mapping.ToProfileForm(updated), Success: msgProfileSaved}, nil
}

func (s *profileService) saveFailed(ctx context.Context, state portssvc.ProfileState, err error) (portssvc.ProfileState, error) {
	s.LogError(ctx, err, "Failed to update profile")
	state.Error = msgProfileSaveFailed
	state.Form.CurrentPassword = ""
	state.Form.NewPassword = ""
	state.Form.ConfirmPassword = ""
	return state, fmt.Errorf("saving profile: %w", err)
}
