// Package articles keeps the articles of the development API in memory.
package articles

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/sitecms/internal/models"
	"github.com/dmitrijs2005/sitecms/internal/shared"
)

type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]models.Article
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]models.Article)}
}

func clone(a models.Article) models.Article {
	a.Tags = slices.Clone(a.Tags)
	if a.PublishedAt != nil {
		t := *a.PublishedAt
		a.PublishedAt = &t
	}
	return a
}

func (r *MemoryRepository) List(ctx context.Context) ([]models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Article, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, clone(a))
	}
	slices.SortFunc(out, func(a, b models.Article) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return out, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id string) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrorNotFound
	}
	a = clone(a)
	return &a, nil
}

func (r *MemoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if a.Slug == slug {
			a = clone(a)
			return &a, nil
		}
	}
	return nil, shared.ErrorNotFound
}

func (r *MemoryRepository) SlugTaken(ctx context.Context, slug, exceptID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for id, a := range r.byID {
		if a.Slug == slug && id != exceptID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) Save(ctx context.Context, a *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[a.ID] = clone(*a)
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return shared.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *MemoryRepository) IncrementViews(ctx context.Context, id string) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrorNotFound
	}
	a.Views++
	r.byID[id] = a
	a = clone(a)
	return &a, nil
}
