package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/sitecms/internal/client/client"
	"github.com/dmitrijs2005/sitecms/internal/models"
)

// ContactService submits the public site forms. No token is sent.
type ContactService interface {
	Submit(ctx context.Context, m models.ContactMessage) error
	Subscribe(ctx context.Context, email string) error
}

type contactService struct {
	api API
}

func NewContactService(api API) ContactService {
	return &contactService{api: api}
}

func (s *contactService) Submit(ctx context.Context, m models.ContactMessage) error {
	m.Email = strings.TrimSpace(m.Email)
	if err := validate(m); err != nil {
		return err
	}
	return s.api.Do(ctx, client.Request{Method: http.MethodPost, Path: "/contact", Body: m}, nil)
}

func (s *contactService) Subscribe(ctx context.Context, email string) error {
	sub := models.Subscription{Email: strings.TrimSpace(email)}
	if err := validate(sub); err != nil {
		return err
	}
	return s.api.Do(ctx, client.Request{Method: http.MethodPost, Path: "/newsletter/subscribe", Body: sub}, nil)
}
