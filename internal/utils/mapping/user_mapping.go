package mapping

import (
	"strings"

	"github.com/SscSPs/business_panel/internal/core/domain"
	"github.com/SscSPs/business_panel/internal/dto"
)

// ToDomainUser converts the user object of the auth endpoints.
func ToDomainUser(r dto.UserResponse) domain.User {
	return domain.User{
		ID:        r.ID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      r.Role,
	}
}

func ToDomainProfile(r dto.ProfileResponse) domain.Profile {
	return domain.Profile{Email: r.Email, FirstName: r.FirstName, LastName: r.LastName}
}

func ToProfileRequest(p domain.Profile) dto.ProfileRequest {
	return dto.ProfileRequest{Email: p.Email, FirstName: p.FirstName, LastName: p.LastName}
}

func ToPasswordRequest(p domain.PasswordChange) dto.PasswordRequest {
	return dto.PasswordRequest{CurrentPassword: p.CurrentPassword, NewPassword: p.NewPassword}
}

// ToProfileForm fills the profile page. Password fields always start empty.
func ToProfileForm(p domain.Profile) dto.ProfileForm {
	return dto.ProfileForm{Email: p.Email, FirstName: p.FirstName, LastName: p.LastName}
}

func ProfileFromForm(f dto.ProfileForm) domain.Profile {
	return domain.Profile{
		Email:     strings.TrimSpace(f.Email),
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
	}
}

func ToLoginRequest(c domain.Credentials) dto.LoginRequest {
	return dto.LoginRequest{Email: c.Email, Password: c.Password}
}

func CredentialsFromForm(f dto.LoginForm) domain.Credentials {
	return domain.Credentials{Email: strings.TrimSpace(f.Email), Password: f.Password}
}

func ToRegisterRequest(r domain.Registration) dto.RegisterRequest {
	return dto.RegisterRequest{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

func RegistrationFromForm(f dto.RegisterForm) domain.Registration {
	return domain.Registration{
		Email:     strings.TrimSpace(f.Email),
		Password:  f.Password,
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
	}
}
