package domain

import "strings"

// User is the account the panel is signed in as.
type User struct {
	ID        ID     `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role,omitempty"`
}

// DisplayName is shown in the app bar.
func (u User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Email
	}
	return name
}

// Profile is the editable part of the signed-in user.
type Profile struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PasswordChange is sent only when both passwords were supplied.
type PasswordChange struct {
	CurrentPassword string
	NewPassword     string
}

// Credentials identify a user at login.
type Credentials struct {
	Email    string
	Password string
}

// Registration is the payload of a new account.
type Registration struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}
