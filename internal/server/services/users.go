// Package services contains the business logic of the development API.
// This file implements UserService, which checks the admin credentials and
// issues JWTs.
package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sitecms/internal/cryptox"
	"github.com/dmitrijs2005/sitecms/internal/models"
	"github.com/dmitrijs2005/sitecms/internal/server/auth"
	sm "github.com/dmitrijs2005/sitecms/internal/server/models"
	"github.com/dmitrijs2005/sitecms/internal/server/repositories/users"
	"github.com/dmitrijs2005/sitecms/internal/shared"
)

// UserService authenticates the single admin account.
type UserService struct {
	repo      users.Repository
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewUserService(repo users.Repository, secretKey string, tokenTTL time.Duration) *UserService {
	return &UserService{
		repo:      repo,
		jwtSecret: []byte(secretKey),
		tokenTTL:  tokenTTL,
		now:       time.Now,
	}
}

// NewAdmin builds the seeded admin record with a hashed password.
func NewAdmin(username, password string) sm.User {
	return sm.User{
		UserName:     username,
		PasswordHash: cryptox.HashPassword([]byte(password)),
		UpdatedAt:    time.Now(),
	}
}

// Login verifies the credentials and returns a fresh token. Unknown users
// and wrong passwords both give shared.ErrorInvalidLoginPassword.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	user, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load admin: %w", err)
	}

	nameOK := subtle.ConstantTimeCompare([]byte(user.UserName), []byte(username)) == 1
	passOK, err := cryptox.VerifyPassword([]byte(password), user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !nameOK || !passOK {
		return nil, shared.ErrorInvalidLoginPassword
	}

	token, err := auth.GenerateToken(user.UserName, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &models.LoginResponse{Token: token, Username: user.UserName}, nil
}

// Authenticate returns the subject of a valid bearer token.
func (s *UserService) Authenticate(token string) (string, error) {
	return auth.SubjectFromToken(token, s.jwtSecret)
}

// UpdateCredentials changes the username and/or password after checking the
// current password.
func (s *UserService) UpdateCredentials(ctx context.Context, u models.CredentialsUpdate) error {
	// confirmation is a client-side concern and never sent
	u.ConfirmPassword = u.NewPassword
	if err := models.Validate(u); err != nil {
		return err
	}

	user, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("load admin: %w", err)
	}
	ok, err := cryptox.VerifyPassword([]byte(u.CurrentPassword), user.PasswordHash)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return shared.ErrorWrongPassword
	}

	if u.NewUsername != "" {
		user.UserName = u.NewUsername
	}
	if u.NewPassword != "" {
		user.PasswordHash = cryptox.HashPassword([]byte(u.NewPassword))
	}
	user.UpdatedAt = s.now()
	return s.repo.Update(ctx, user)
}
