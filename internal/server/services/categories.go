package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/sitecms/internal/models"
	"github.com/dmitrijs2005/sitecms/internal/server/repositories/categories"
)

type CategoryService struct {
	repo categories.Repository
}

func NewCategoryService(repo categories.Repository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.List(ctx)
}

// Create adds a category. An empty ID is derived from the name.
func (s *CategoryService) Create(ctx context.Context, c models.Category) (*models.Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.ID = strings.TrimSpace(c.ID)
	if c.ID == "" {
		c.ID = models.Slugify(c.Name)
	}
	if err := models.Validate(c); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
