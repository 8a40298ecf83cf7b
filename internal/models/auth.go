package models

import "time"

// Credentials are sent to the login endpoint and never stored.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the payload of a successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username,omitempty"`
}

// CredentialsUpdate changes the admin username and/or password.
// The current password is always required.
type CredentialsUpdate struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewUsername     string `json:"newUsername,omitempty" validate:"omitempty,min=3,max=50"`
	NewPassword     string `json:"newPassword,omitempty" validate:"omitempty,min=6"`
	ConfirmPassword string `json:"-" validate:"eqfield=NewPassword"`
}

// TokenInfo is what can be read from a JWT-shaped session token without
// verifying its signature.
type TokenInfo struct {
	Subject   string     `json:"subject,omitempty"`
	IssuedAt  *time.Time `json:"issuedAt,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// Expired reports whether the token carries an expiry that has passed.
func (t TokenInfo) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}
