package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/sitecms/internal/client/client"
	"github.com/dmitrijs2005/sitecms/internal/models"
)

// AuthService manages the admin session token.
//
// Login stores the token only when the server accepts the credentials; a
// rejected login leaves the token store untouched and returns the server
// message as the error text. Logout is local.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
	IsLoggedIn(ctx context.Context) bool
	UpdateCredentials(ctx context.Context, u models.CredentialsUpdate) error
	TokenInfo(ctx context.Context) (*models.TokenInfo, error)
}

type authService struct {
	api API
}

func NewAuthService(api API) AuthService {
	return &authService{api: api}
}

func (a *authService) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	creds := models.Credentials{Username: username, Password: password}
	if err := validate(creds); err != nil {
		return nil, err
	}

	var resp models.LoginResponse
	err := a.api.Do(ctx, client.Request{Method: http.MethodPost, Path: "/auth/login", Body: creds}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, &client.APIError{Kind: client.ErrServer, Status: http.StatusOK, Message: "login response did not include a token"}
	}

	if err := a.api.Store().Set(ctx, resp.Token); err != nil {
		return &resp, fmt.Errorf("save token: %w", err)
	}
	return &resp, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.api.Store().Clear(ctx)
}

func (a *authService) IsLoggedIn(ctx context.Context) bool {
	return a.api.Store().Has(ctx)
}

func (a *authService) UpdateCredentials(ctx context.Context, u models.CredentialsUpdate) error {
	if err := validate(u); err != nil {
		return err
	}
	return a.api.Do(ctx, client.Request{Method: http.MethodPut, Path: "/admin/credentials", Body: u, Auth: true}, nil)
}

// TokenInfo reads the claims of the stored token without verifying it.
func (a *authService) TokenInfo(ctx context.Context) (*models.TokenInfo, error) {
	token, ok := a.api.Store().Get(ctx)
	if !ok {
		return nil, ErrNotLoggedIn
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpaqueToken, err)
	}

	info := &models.TokenInfo{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		info.IssuedAt = ptr(claims.IssuedAt.Time)
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = ptr(claims.ExpiresAt.Time)
	}
	return info, nil
}

func ptr(t time.Time) *time.Time { return &t }
