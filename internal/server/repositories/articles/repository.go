package articles

import (
	"context"

	"github.com/dmitrijs2005/sitecms/internal/models"
)

type Repository interface {
	// List returns every article, newest first.
	List(ctx context.Context) ([]models.Article, error)
	Get(ctx context.Context, id string) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	// SlugTaken reports whether another article than exceptID uses slug.
	SlugTaken(ctx context.Context, slug, exceptID string) (bool, error)
	Save(ctx context.Context, a *models.Article) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) (*models.Article, error)
}
