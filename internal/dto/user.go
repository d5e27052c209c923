package dto

import "github.com/SscSPs/business_panel/internal/core/domain"

// --- Auth wire DTOs ---

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserResponse is the user object of /api/auth/login and /api/auth/me.
type UserResponse struct {
	ID        domain.ID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
}

// LoginResponse carries the backend token.
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	Token       string        `json:"token"` // older backends
	User        *UserResponse `json:"user"`
}

// BearerToken returns whichever token field the backend filled.
func (r LoginResponse) BearerToken() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}

// --- Profile wire DTOs ---

// ProfileResponse is GET /api/users/profile.
type ProfileResponse struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ProfileUpdateResponse is PUT /api/users/profile.
type ProfileUpdateResponse struct {
	Message string           `json:"message"`
	User    *ProfileResponse `json:"user"`
}

// ProfileRequest is the body of PUT /api/users/profile.
type ProfileRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PasswordRequest is the body of PUT /api/users/profile/password.
type PasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// --- Forms ---

// LoginForm is the sign-in page.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6"`
}

func (LoginForm) ValidationMessages() map[string]string {
	return map[string]string{
		"email.required":    "Email jest wymagany",
		"email.email":       "Wprowadź poprawny adres email",
		"password.required": "Hasło jest wymagane",
		"password.min":      "Hasło musi mieć co najmniej 6 znaków",
	}
}

// RegisterForm is the sign-up page.
type RegisterForm struct {
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required,min=6"`
	FirstName string `form:"firstName" validate:"required"`
	LastName  string `form:"lastName" validate:"required"`
}

func (RegisterForm) ValidationMessages() map[string]string {
	return map[string]string{
		"email.required":     "Email jest wymagany",
		"email.email":        "Wprowadź poprawny email",
		"password.required":  "Hasło jest wymagane",
		"password.min":       "Minimum 6 znaków",
		"firstName.required": "Imię jest wymagane",
		"lastName.required":  "Nazwisko jest wymagane",
	}
}

// ProfileForm edits the profile and optionally the password. When any
// password field is filled all three become required.
type ProfileForm struct {
	FirstName       string `form:"firstName" validate:"required"`
	LastName        string `form:"lastName" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	CurrentPassword string `form:"currentPassword" validate:"omitempty,min=6"`
	NewPassword     string `form:"newPassword" validate:"omitempty,min=6"`
	ConfirmPassword string `form:"confirmPassword" validate:"omitempty,eqfield=NewPassword"`
}

// WantsPasswordChange reports whether any password field was filled.
func (f ProfileForm) WantsPasswordChange() bool {
	return f.CurrentPassword != "" || f.NewPassword != "" || f.ConfirmPassword != ""
}

func (ProfileForm) ValidationMessages() map[string]string {
	return map[string]string{
		"firstName.required":       "Imię jest wymagane",
		"lastName.required":        "Nazwisko jest wymagane",
		"email.required":           "Email jest wymagany",
		"email.email":              "Nieprawidłowy email",
		"currentPassword.min":      "Minimum 6 znaków",
		"currentPassword.required": "Podaj obecne hasło",
		"newPassword.min":          "Minimum 6 znaków",
		"newPassword.required":     "Podaj nowe hasło",
		"confirmPassword.required": "Powtórz nowe hasło",
		"confirmPassword.eqfield":  "Hasła muszą być takie same",
	}
}
