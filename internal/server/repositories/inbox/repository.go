// Package inbox keeps contact form messages and newsletter subscribers.
package inbox

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/sitecms/internal/models"
	"github.com/dmitrijs2005/sitecms/internal/shared"
)

// Message is a received contact form.
type Message struct {
	models.ContactMessage
	ReceivedAt time.Time
}

type Repository interface {
	AddMessage(ctx context.Context, m Message) error
	Messages(ctx context.Context) ([]Message, error)
	// Subscribe fails with shared.ErrorAlreadyExists for a known address.
	Subscribe(ctx context.Context, email string) error
	Subscribers(ctx context.Context) ([]string, error)
}

type MemoryRepository struct {
	mu          sync.Mutex
	messages    []Message
	subscribers []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) AddMessage(ctx context.Context, m Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, m)
	return nil
}

func (r *MemoryRepository) Messages(ctx context.Context) ([]Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.messages), nil
}

func (r *MemoryRepository) Subscribe(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.subscribers {
		if strings.EqualFold(s, email) {
			return shared.ErrorAlreadyExists
		}
	}
	r.subscribers = append(r.subscribers, email)
	return nil
}

func (r *MemoryRepository) Subscribers(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.subscribers), nil
}
