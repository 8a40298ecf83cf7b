// Package categories keeps the article categories of the development API.
package categories

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/sitecms/internal/models"
	"github.com/dmitrijs2005/sitecms/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]models.Category, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, c models.Category) error
	// Delete refuses to remove the last remaining category.
	Delete(ctx context.Context, id string) error
}

type MemoryRepository struct {
	mu   sync.RWMutex
	cats []models.Category
}

// NewMemoryRepository starts with seed, in order.
func NewMemoryRepository(seed []models.Category) *MemoryRepository {
	return &MemoryRepository{cats: slices.Clone(seed)}
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.cats), nil
}

func (r *MemoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return models.FindCategory(r.cats, id) >= 0, nil
}

func (r *MemoryRepository) Create(ctx context.Context, c models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if models.FindCategory(r.cats, c.ID) >= 0 {
		return shared.ErrorAlreadyExists
	}
	r.cats = append(r.cats, c)
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := models.FindCategory(r.cats, id)
	if i < 0 {
		return shared.ErrorNotFound
	}
	if len(r.cats) <= 1 {
		return shared.ErrorLastCategory
	}
	r.cats = slices.Delete(r.cats, i, i+1)
	return nil
}
