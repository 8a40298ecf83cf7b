package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/sitecms/internal/logging"
	"github.com/dmitrijs2005/sitecms/internal/models"
	"github.com/dmitrijs2005/sitecms/internal/server/repositories/inbox"
)

// InboxService accepts the public contact and newsletter forms.
type InboxService struct {
	repo   inbox.Repository
	logger logging.Logger
}

func NewInboxService(repo inbox.Repository, logger logging.Logger) *InboxService {
	return &InboxService{repo: repo, logger: logger}
}

func (s *InboxService) Contact(ctx context.Context, m models.ContactMessage) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	if err := models.Validate(m); err != nil {
		return err
	}
	if err := s.repo.AddMessage(ctx, inbox.Message{ContactMessage: m, ReceivedAt: time.Now()}); err != nil {
		return err
	}
	s.logger.Info(ctx, "contact message received", "from", m.Email, "service", m.Service)
	return nil
}

func (s *InboxService) Subscribe(ctx context.Context, sub models.Subscription) error {
	sub.Email = strings.TrimSpace(sub.Email)
	if err := models.Validate(sub); err != nil {
		return err
	}
	return s.repo.Subscribe(ctx, sub.Email)
}
