package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/sitecms/internal/models"
	"github.com/dmitrijs2005/sitecms/internal/server/repositories/articles"
	"github.com/dmitrijs2005/sitecms/internal/server/repositories/categories"
	"github.com/dmitrijs2005/sitecms/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newArticleSvc(t *testing.T) *ArticleService {
	t.Helper()
	s := NewArticleService(articles.NewMemoryRepository(), categories.NewMemoryRepository(models.DefaultCategories()))
	c := &clock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.now = c.now
	return s
}

func input(title string, status models.ArticleStatus) models.ArticleInput {
	return models.ArticleInput{
		Title:    title,
		Excerpt:  "excerpt of " + title,
		Content:  "<p>" + title + " body</p>",
		Category: "technology",
		Tags:     []string{" go ", "", "web"},
		Status:   status,
	}
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, 1, ReadTime(""))
	assert.Equal(t, 1, ReadTime("<p>few words</p>"))
	assert.Equal(t, 2, ReadTime(strings.Repeat("word ", 201)))
}

func TestArticleService_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	s := newArticleSvc(t)

	a, err := s.Create(ctx, input("Hello, World!", ""))
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "hello-world", a.Slug)
	assert.Equal(t, models.StatusDraft, a.Status)
	assert.Equal(t, "Admin", a.Author)
	assert.Equal(t, []string{"go", "web"}, a.Tags)
	assert.Nil(t, a.PublishedAt)
	assert.Equal(t, 1, a.ReadTime)
}

func TestArticleService_UniqueSlugs(t *testing.T) {
	ctx := context.Background()
	s := newArticleSvc(t)

	a, err := s.Create(ctx, input("Same", ""))
	require.NoError(t, err)
	b, err := s.Create(ctx, input("Same", ""))
	require.NoError(t, err)
	c, err := s.Create(ctx, input("Same", ""))
	require.NoError(t, err)

	assert.Equal(t, "same", a.Slug)
	assert.Equal(t, "same-2", b.Slug)
	assert.Equal(t, "same-3", c.Slug)

	// keeping the title keeps the slug
	b2, err := s.Update(ctx, b.ID, input("Same", ""))
	require.NoError(t, err)
	assert.Equal(t, "same-2", b2.Slug)

	b3, err := s.Update(ctx, b.ID, input("Other", ""))
	require.NoError(t, err)
	assert.Equal(t, "other", b3.Slug)
}

func TestArticleService_Validation(t *testing.T) {
	ctx := context.Background()
	s := newArticleSvc(t)

	_, err := s.Create(ctx, models.ArticleInput{})
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "title is required")

	in := input("Bad", "")
	in.Category = "cooking"
	_, err = s.Create(ctx, in)
	assert.ErrorIs(t, err, shared.ErrorValidation)

	_, err = s.Update(ctx, "missing", input("x", ""))
	assert.ErrorIs(t, err, shared.ErrorNotFound)

	_, err = s.AdminList(ctx, "archived")
	assert.ErrorIs(t, err, shared.ErrorValidation)
}

func TestArticleService_PublishFlow(t *testing.T) {
	ctx := context.Background()
	s := newArticleSvc(t)

	a, err := s.Create(ctx, input("Draft", ""))
	require.NoError(t, err)

	_, err = s.BySlug(ctx, a.Slug)
	assert.ErrorIs(t, err, shared.ErrorNotFound)

	p, err := s.Publish(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, p.Status)
	require.NotNil(t, p.PublishedAt)

	got, err := s.BySlug(ctx, a.Slug)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Views)

	u, err := s.Unpublish(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, u.Status)
	assert.Nil(t, u.PublishedAt)

	_, err = s.Publish(ctx, "missing")
	assert.ErrorIs(t, err, shared.ErrorNotFound)
}

func TestArticleService_PublicListings(t *testing.T) {
	ctx := context.Background()
	s := newArticleSvc(t)

	for _, title := range []string{"One", "Two", "Three", "Four"} {
		in := input(title, models.StatusPublished)
		in.Featured = title == "Two"
		if title == "Four" {
			in.Category = "design"
		}
		_, err := s.Create(ctx, in)
		require.NoError(t, err)
	}
	_, err := s.Create(ctx, input("Hidden draft", ""))
	require.NoError(t, err)

	all, err := s.List(ctx, models.ArticleQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	design, err := s.List(ctx, models.ArticleQuery{Category: "design"})
	require.NoError(t, err)
	require.Len(t, design, 1)
	assert.Equal(t, "Four", design[0].Title)

	found, err := s.List(ctx, models.ArticleQuery{Search: "THREE"})
	require.NoError(t, err)
	require.Len(t, found, 1)

	page2, err := s.List(ctx, models.ArticleQuery{Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, page2, 1)

	featured, err := s.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Two", featured[0].Title)

	recent, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "Four", recent[0].Title)

	drafts, err := s.AdminList(ctx, "draft")
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ArticleStats{Total: 5, Published: 4, Drafts: 1}, *st)
}

func TestArticleService_Delete(t *testing.T) {
	ctx := context.Background()
	s := newArticleSvc(t)

	a, err := s.Create(ctx, input("Gone", ""))
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, a.ID))
	assert.ErrorIs(t, s.Delete(ctx, a.ID), shared.ErrorNotFound)
}
