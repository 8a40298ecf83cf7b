// Package models defines the CMS resources exchanged with the REST API.
package models

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

// Article is a blog post as returned by the API.
type Article struct {
	ID            string        `json:"id"`
	Slug          string        `json:"slug"`
	Title         string        `json:"title"`
	Excerpt       string        `json:"excerpt"`
	Content       string        `json:"content"`
	Category      string        `json:"category"`
	Author        string        `json:"author"`
	FeaturedImage string        `json:"featuredImage,omitempty"`
	Tags          []string      `json:"tags"`
	Status        ArticleStatus `json:"status"`
	Featured      bool          `json:"featured"`
	ReadTime      int           `json:"readTime"`
	Views         int           `json:"views"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	PublishedAt   *time.Time    `json:"publishedAt,omitempty"`
}

// ArticleInput is the body of create and update calls.
type ArticleInput struct {
	Title         string        `json:"title" validate:"required,max=200"`
	Excerpt       string        `json:"excerpt" validate:"required,max=500"`
	Content       string        `json:"content" validate:"required"`
	Category      string        `json:"category" validate:"required,slug"`
	Author        string        `json:"author,omitempty" validate:"max=100"`
	FeaturedImage string        `json:"featuredImage,omitempty" validate:"omitempty,uri"`
	Tags          []string      `json:"tags" validate:"dive,max=50"`
	Status        ArticleStatus `json:"status" validate:"omitempty,oneof=draft published"`
	Featured      bool          `json:"featured"`
}

// Normalize trims text fields, drops empty tags while keeping their order
// and defaults the status to draft.
func (in *ArticleInput) Normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Excerpt = strings.TrimSpace(in.Excerpt)
	in.Category = strings.TrimSpace(in.Category)
	in.Author = strings.TrimSpace(in.Author)
	in.FeaturedImage = strings.TrimSpace(in.FeaturedImage)
	in.Tags = CleanTags(in.Tags)
	if in.Status == "" {
		in.Status = StatusDraft
	}
}

// CleanTags trims every tag and removes empty ones. The result is never nil.
func CleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ParseTags splits a comma separated list as typed into a form.
func ParseTags(s string) []string {
	return CleanTags(strings.Split(s, ","))
}

// ArticleQuery filters the public article listing.
type ArticleQuery struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

func (q ArticleQuery) Values() url.Values {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

// ArticleStats is the admin dashboard summary. Fetching it doubles as the
// session liveness probe.
type ArticleStats struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Drafts    int `json:"drafts"`
	Views     int `json:"views"`
}
