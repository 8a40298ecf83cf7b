package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/sitecms/internal/client/client"
	"github.com/dmitrijs2005/sitecms/internal/models"
)

// ArticleService covers the public blog reads and the admin article
// management endpoints.
type ArticleService interface {
	List(ctx context.Context, q models.ArticleQuery) ([]models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	Featured(ctx context.Context) ([]models.Article, error)
	Recent(ctx context.Context, limit int) ([]models.Article, error)

	AdminList(ctx context.Context, status models.ArticleStatus) ([]models.Article, error)
	Find(ctx context.Context, id string) (*models.Article, error)
	Create(ctx context.Context, in models.ArticleInput) (*models.Article, error)
	Update(ctx context.Context, id string, in models.ArticleInput) (*models.Article, error)
	Delete(ctx context.Context, id string) error
	Publish(ctx context.Context, id string) (*models.Article, error)
	Unpublish(ctx context.Context, id string) (*models.Article, error)
	Stats(ctx context.Context) (*models.ArticleStats, error)
}

type articleService struct {
	api API
}

func NewArticleService(api API) ArticleService {
	return &articleService{api: api}
}

func (s *articleService) list(ctx context.Context, path string, query url.Values, auth bool) ([]models.Article, error) {
	articles := []models.Article{}
	err := s.api.Do(ctx, client.Request{Method: http.MethodGet, Path: path, Query: query, Auth: auth}, &articles)
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *articleService) one(ctx context.Context, r client.Request) (*models.Article, error) {
	var a models.Article
	if err := s.api.Do(ctx, r, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *articleService) List(ctx context.Context, q models.ArticleQuery) ([]models.Article, error) {
	return s.list(ctx, "/articles", q.Values(), false)
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	return s.one(ctx, client.Request{Method: http.MethodGet, Path: "/articles/" + url.PathEscape(slug)})
}

func (s *articleService) Featured(ctx context.Context) ([]models.Article, error) {
	return s.list(ctx, "/articles/featured", nil, false)
}

func (s *articleService) Recent(ctx context.Context, limit int) ([]models.Article, error) {
	var q url.Values
	if limit > 0 {
		q = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	return s.list(ctx, "/articles/recent", q, false)
}

// AdminList returns drafts and published articles. An empty status means all.
func (s *articleService) AdminList(ctx context.Context, status models.ArticleStatus) ([]models.Article, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": {string(status)}}
	}
	return s.list(ctx, "/admin/articles", q, true)
}

// Find looks an article up by ID in the admin listing.
func (s *articleService) Find(ctx context.Context, id string) (*models.Article, error) {
	all, err := s.AdminList(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, &client.APIError{Kind: client.ErrNotFound, Message: "Article not found"}
}

func (s *articleService) Create(ctx context.Context, in models.ArticleInput) (*models.Article, error) {
	in.Normalize()
	if err := validate(in); err != nil {
		return nil, err
	}
	return s.one(ctx, client.Request{Method: http.MethodPost, Path: "/admin/articles", Body: in, Auth: true})
}

func (s *articleService) Update(ctx context.Context, id string, in models.ArticleInput) (*models.Article, error) {
	in.Normalize()
	if err := validate(in); err != nil {
		return nil, err
	}
	return s.one(ctx, client.Request{Method: http.MethodPut, Path: adminArticlePath(id), Body: in, Auth: true})
}

func (s *articleService) Delete(ctx context.Context, id string) error {
	return s.api.Do(ctx, client.Request{Method: http.MethodDelete, Path: adminArticlePath(id), Auth: true}, nil)
}

func (s *articleService) Publish(ctx context.Context, id string) (*models.Article, error) {
	return s.one(ctx, client.Request{Method: http.MethodPatch, Path: adminArticlePath(id) + "/publish", Auth: true})
}

func (s *articleService) Unpublish(ctx context.Context, id string) (*models.Article, error) {
	return s.one(ctx, client.Request{Method: http.MethodPatch, Path: adminArticlePath(id) + "/unpublish", Auth: true})
}

// Stats is also the session liveness probe.
func (s *articleService) Stats(ctx context.Context) (*models.ArticleStats, error) {
	var st models.ArticleStats
	if err := s.api.Do(ctx, client.Request{Method: http.MethodGet, Path: StatsPath, Auth: true}, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// StatsPath is the authorized endpoint used to probe the session.
const StatsPath = "/admin/articles/stats"

func adminArticlePath(id string) string {
	return "/admin/articles/" + url.PathEscape(id)
}
