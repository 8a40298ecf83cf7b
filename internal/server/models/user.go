// Package models holds the server-side records that never leave the
// development API.
package models

import "time"

// User is the admin account. PasswordHash is an encoded argon2id hash.
type User struct {
	UserName     string
	PasswordHash string
	UpdatedAt    time.Time
}
