package services

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/sitecms/internal/models"
	"github.com/dmitrijs2005/sitecms/internal/server/repositories/articles"
	"github.com/dmitrijs2005/sitecms/internal/server/repositories/categories"
	"github.com/dmitrijs2005/sitecms/internal/shared"
	"github.com/google/uuid"
)

const (
	defaultAuthor      = "Admin"
	defaultRecentLimit = 3
	wordsPerMinute     = 200
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

// ArticleService manages articles and answers the public listings, which
// only ever show published articles.
type ArticleService struct {
	repo       articles.Repository
	categories categories.Repository
	now        func() time.Time
	newID      func() string
}

func NewArticleService(repo articles.Repository, cats categories.Repository) *ArticleService {
	return &ArticleService{
		repo:       repo,
		categories: cats,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// ReadTime estimates minutes of reading for an HTML body, at least one.
func ReadTime(html string) int {
	words := len(strings.Fields(tagRe.ReplaceAllString(html, " ")))
	return max(1, (words+wordsPerMinute-1)/wordsPerMinute)
}

func (s *ArticleService) published(ctx context.Context) ([]models.Article, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(all, func(a models.Article) bool {
		return a.Status != models.StatusPublished
	}), nil
}

// List filters published articles by category and a case-insensitive search
// over title, excerpt and tags. Page and Limit paginate when Limit > 0.
func (s *ArticleService) List(ctx context.Context, q models.ArticleQuery) ([]models.Article, error) {
	list, err := s.published(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	list = slices.DeleteFunc(list, func(a models.Article) bool {
		if q.Category != "" && a.Category != q.Category {
			return true
		}
		return search != "" && !matches(a, search)
	})

	if q.Limit > 0 {
		page := max(q.Page, 1)
		start := min((page-1)*q.Limit, len(list))
		end := min(start+q.Limit, len(list))
		list = list[start:end]
	}
	return list, nil
}

func matches(a models.Article, search string) bool {
	if strings.Contains(strings.ToLower(a.Title), search) || strings.Contains(strings.ToLower(a.Excerpt), search) {
		return true
	}
	return slices.ContainsFunc(a.Tags, func(t string) bool {
		return strings.Contains(strings.ToLower(t), search)
	})
}

// BySlug returns a published article and counts the view.
func (s *ArticleService) BySlug(ctx context.Context, slug string) (*models.Article, error) {
	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if a.Status != models.StatusPublished {
		return nil, shared.ErrorNotFound
	}
	return s.repo.IncrementViews(ctx, a.ID)
}

func (s *ArticleService) Featured(ctx context.Context) ([]models.Article, error) {
	list, err := s.published(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(list, func(a models.Article) bool { return !a.Featured }), nil
}

// Recent returns the latest published articles by publication time.
func (s *ArticleService) Recent(ctx context.Context, limit int) ([]models.Article, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	list, err := s.published(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(list, func(a, b models.Article) int {
		return publishedAt(b).Compare(publishedAt(a))
	})
	return list[:min(limit, len(list))], nil
}

func publishedAt(a models.Article) time.Time {
	if a.PublishedAt != nil {
		return *a.PublishedAt
	}
	return a.CreatedAt
}

// AdminList returns all articles, or those with the given status.
func (s *ArticleService) AdminList(ctx context.Context, status string) ([]models.Article, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	switch models.ArticleStatus(status) {
	case "":
		return all, nil
	case models.StatusDraft, models.StatusPublished:
		return slices.DeleteFunc(all, func(a models.Article) bool {
			return string(a.Status) != status
		}), nil
	}
	return nil, fmt.Errorf("%w: unknown status %q", shared.ErrorValidation, status)
}

func (s *ArticleService) Create(ctx context.Context, in models.ArticleInput) (*models.Article, error) {
	if err := s.check(ctx, &in); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	a := &models.Article{
		ID:        s.newID(),
		CreatedAt: now,
	}
	if err := s.apply(ctx, a, in, now); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces the editable fields. The slug follows the title.
func (s *ArticleService) Update(ctx context.Context, id string, in models.ArticleInput) (*models.Article, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.check(ctx, &in); err != nil {
		return nil, err
	}
	if err := s.apply(ctx, a, in, s.now().UTC()); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ArticleService) check(ctx context.Context, in *models.ArticleInput) error {
	in.Normalize()
	if err := models.Validate(in); err != nil {
		return err
	}
	ok, err := s.categories.Exists(ctx, in.Category)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: unknown category %q", shared.ErrorValidation, in.Category)
	}
	return nil
}

func (s *ArticleService) apply(ctx context.Context, a *models.Article, in models.ArticleInput, now time.Time) error {
	if a.Slug == "" || a.Title != in.Title {
		slug, err := s.uniqueSlug(ctx, in.Title, a.ID)
		if err != nil {
			return err
		}
		a.Slug = slug
	}

	a.Title = in.Title
	a.Excerpt = in.Excerpt
	a.Content = in.Content
	a.Category = in.Category
	a.Author = in.Author
	if a.Author == "" {
		a.Author = defaultAuthor
	}
	a.FeaturedImage = in.FeaturedImage
	a.Tags = in.Tags
	a.Featured = in.Featured
	a.ReadTime = ReadTime(in.Content)
	a.UpdatedAt = now
	setStatus(a, in.Status, now)
	return nil
}

func setStatus(a *models.Article, status models.ArticleStatus, now time.Time) {
	a.Status = status
	switch {
	case status == models.StatusPublished && a.PublishedAt == nil:
		a.PublishedAt = &now
	case status == models.StatusDraft:
		a.PublishedAt = nil
	}
}

func (s *ArticleService) uniqueSlug(ctx context.Context, title, exceptID string) (string, error) {
	base := models.Slugify(title)
	if base == "" {
		base = "article"
	}
	slug := base
	for n := 2; ; n++ {
		taken, err := s.repo.SlugTaken(ctx, slug, exceptID)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = base + "-" + strconv.Itoa(n)
	}
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ArticleService) Publish(ctx context.Context, id string) (*models.Article, error) {
	return s.transition(ctx, id, models.StatusPublished)
}

func (s *ArticleService) Unpublish(ctx context.Context, id string) (*models.Article, error) {
	return s.transition(ctx, id, models.StatusDraft)
}

func (s *ArticleService) transition(ctx context.Context, id string, status models.ArticleStatus) (*models.Article, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	setStatus(a, status, now)
	a.UpdatedAt = now
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *ArticleService) Stats(ctx context.Context) (*models.ArticleStats, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	st := &models.ArticleStats{Total: len(all)}
	for _, a := range all {
		if a.Status == models.StatusPublished {
			st.Published++
		} else {
			st.Drafts++
		}
		st.Views += a.Views
	}
	return st, nil
}
