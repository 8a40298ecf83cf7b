// Package services holds the resource operations the admin tools drive:
// authentication, articles, categories, media and the public forms.
//
// Every service goes through the HTTP client and therefore reports failures
// with the client error taxonomy. Inputs are validated locally first; such
// failures are client.ErrValidation errors and no request is sent.
package services

import (
	"context"
	"errors"
	"io"

	"github.com/dmitrijs2005/sitecms/internal/client/client"
	"github.com/dmitrijs2005/sitecms/internal/client/tokenstore"
	"github.com/dmitrijs2005/sitecms/internal/models"
)

// API is the part of *client.Client the services use.
type API interface {
	Do(ctx context.Context, r client.Request, out any) error
	Upload(ctx context.Context, path, field, filename string, r io.Reader, out any) error
	Store() tokenstore.Store
}

var _ API = (*client.Client)(nil)

var (
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrOpaqueToken  = errors.New("token is not a JWT")
	ErrLastCategory = errors.New("at least one category must remain")
)

func validate(v any) error {
	if err := models.Validate(v); err != nil {
		return client.Invalid(err)
	}
	return nil
}
