// Package users stores the single admin account of the development API.
package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/sitecms/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

type MemoryRepository struct {
	mu   sync.RWMutex
	user models.User
}

func NewMemoryRepository(user models.User) *MemoryRepository {
	return &MemoryRepository{user: user}
}

func (r *MemoryRepository) Get(ctx context.Context) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u := r.user
	return &u, nil
}

func (r *MemoryRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = *user
	return nil
}
