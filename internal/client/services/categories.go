package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/sitecms/internal/client/client"
	"github.com/dmitrijs2005/sitecms/internal/models"
)

// CategoryService manages article categories. Create and Delete take the
// categories the caller currently knows about; the duplicate and last
// category checks run against that list before any request is sent.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	AdminList(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, c models.Category, known []models.Category) (*models.Category, error)
	Delete(ctx context.Context, id string, known []models.Category) error
}

type categoryService struct {
	api API
}

func NewCategoryService(api API) CategoryService {
	return &categoryService{api: api}
}

func (s *categoryService) get(ctx context.Context, path string, auth bool) ([]models.Category, error) {
	cats := []models.Category{}
	if err := s.api.Do(ctx, client.Request{Method: http.MethodGet, Path: path, Auth: auth}, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.get(ctx, "/categories", false)
}

func (s *categoryService) AdminList(ctx context.Context) ([]models.Category, error) {
	return s.get(ctx, "/admin/categories", true)
}

func (s *categoryService) Create(ctx context.Context, c models.Category, known []models.Category) (*models.Category, error) {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	if err := validate(c); err != nil {
		return nil, err
	}
	if models.FindCategory(known, c.ID) >= 0 {
		return nil, client.Invalid(fmt.Errorf("category %q already exists", c.ID))
	}

	var created models.Category
	err := s.api.Do(ctx, client.Request{Method: http.MethodPost, Path: "/admin/categories", Body: c, Auth: true}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *categoryService) Delete(ctx context.Context, id string, known []models.Category) error {
	if len(known) <= 1 {
		return client.Invalid(ErrLastCategory)
	}
	return s.api.Do(ctx, client.Request{Method: http.MethodDelete, Path: "/admin/categories/" + url.PathEscape(id), Auth: true}, nil)
}
