package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/sitecms/internal/models"
)

func (a *App) printArticles(list []models.Article) {
	if len(list) == 0 {
		printlnFn("No articles.")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSLUG\tTITLE\tCATEGORY\tSTATUS\tFEATURED")
	for _, ar := range list {
		featured := ""
		if ar.Featured {
			featured = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", ar.ID, ar.Slug, ar.Title, ar.Category, ar.Status, featured)
	}
	_ = tw.Flush()
}

func (a *App) printArticle(ar *models.Article) {
	a.printf("%s\n", ar.Title)
	a.printf("  slug:      %s\n", ar.Slug)
	a.printf("  category:  %s\n", ar.Category)
	a.printf("  author:    %s\n", ar.Author)
	a.printf("  status:    %s\n", ar.Status)
	if len(ar.Tags) > 0 {
		a.printf("  tags:      %s\n", strings.Join(ar.Tags, ", "))
	}
	if ar.FeaturedImage != "" {
		a.printf("  image:     %s\n", ar.FeaturedImage)
	}
	a.printf("  read time: %d min, views: %d\n", ar.ReadTime, ar.Views)
	a.printf("\n%s\n\n%s\n", ar.Excerpt, ar.Content)
}

// Articles lists published articles, optionally filtered by a category and
// a search phrase.
func (a *App) Articles(ctx context.Context, args []string) error {
	var q models.ArticleQuery
	if len(args) > 0 {
		q.Category = args[0]
	}
	if len(args) > 1 {
		q.Search = strings.Join(args[1:], " ")
	}
	list, err := a.articleService.List(ctx, q)
	if err != nil {
		return err
	}
	a.printArticles(list)
	return nil
}

func (a *App) Show(ctx context.Context, slug string) error {
	ar, err := a.articleService.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	a.printArticle(ar)
	return nil
}

func (a *App) Featured(ctx context.Context) error {
	list, err := a.articleService.Featured(ctx)
	if err != nil {
		return err
	}
	a.printArticles(list)
	return nil
}

func (a *App) Recent(ctx context.Context, args []string) error {
	limit := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			usage("recent [n]")
			return nil
		}
		limit = n
	}
	list, err := a.articleService.Recent(ctx, limit)
	if err != nil {
		return err
	}
	a.printArticles(list)
	return nil
}

func (a *App) AdminArticles(ctx context.Context, args []string) error {
	return a.protected(ctx, func(ctx context.Context) error {
		var status models.ArticleStatus
		if len(args) > 0 {
			status = models.ArticleStatus(args[0])
		}
		list, err := a.articleService.AdminList(ctx, status)
		if err != nil {
			return err
		}
		a.printArticles(list)
		return nil
	})
}

// readArticle prompts for every field of the article form. Values of base
// are offered as defaults.
func (a *App) readArticle(base models.ArticleInput) (models.ArticleInput, error) {
	in := base
	var err error

	ask := func(prompt string, dst *string) {
		if err != nil {
			return
		}
		*dst, err = GetWithDefault(a.reader, prompt, *dst, a.out)
	}
	ask("Title", &in.Title)
	ask("Excerpt", &in.Excerpt)
	ask("Category", &in.Category)
	ask("Author", &in.Author)
	ask("Featured image URL", &in.FeaturedImage)

	tags := strings.Join(in.Tags, ", ")
	ask("Tags (comma separated)", &tags)

	status := string(in.Status)
	if status == "" {
		status = string(models.StatusDraft)
	}
	ask("Status (draft|published)", &status)

	featured := "n"
	if in.Featured {
		featured = "y"
	}
	ask("Featured (y/n)", &featured)
	if err != nil {
		return in, err
	}

	content, err := getMultiline(a.reader, "Content (HTML)", a.out)
	if err != nil {
		return in, err
	}
	if content != "" {
		in.Content = content
	}

	in.Tags = models.ParseTags(tags)
	in.Status = models.ArticleStatus(strings.ToLower(status))
	in.Featured = strings.EqualFold(featured, "y") || strings.EqualFold(featured, "yes")
	return in, nil
}

func (a *App) Create(ctx context.Context) error {
	return a.protected(ctx, func(ctx context.Context) error {
		in, err := a.readArticle(models.ArticleInput{})
		if err != nil {
			return err
		}
		ar, err := a.articleService.Create(ctx, in)
		if err != nil {
			return err
		}
		a.printf("Created article %s (%s)\n", ar.ID, ar.Slug)
		return nil
	})
}

func (a *App) Edit(ctx context.Context, id string) error {
	return a.protected(ctx, func(ctx context.Context) error {
		cur, err := a.articleService.Find(ctx, id)
		if err != nil {
			return err
		}
		in, err := a.readArticle(models.ArticleInput{
			Title:         cur.Title,
			Excerpt:       cur.Excerpt,
			Content:       cur.Content,
			Category:      cur.Category,
			Author:        cur.Author,
			FeaturedImage: cur.FeaturedImage,
			Tags:          cur.Tags,
			Status:        cur.Status,
			Featured:      cur.Featured,
		})
		if err != nil {
			return err
		}
		ar, err := a.articleService.Update(ctx, id, in)
		if err != nil {
			return err
		}
		a.printf("Updated article %s (%s)\n", ar.ID, ar.Slug)
		return nil
	})
}

func (a *App) Delete(ctx context.Context, id string) error {
	return a.protected(ctx, func(ctx context.Context) error {
		ok, err := getConfirm(a.reader, fmt.Sprintf("Delete article %s?", id), a.out)
		if err != nil || !ok {
			return err
		}
		if err := a.articleService.Delete(ctx, id); err != nil {
			return err
		}
		printlnFn("Deleted.")
		return nil
	})
}

func (a *App) Publish(ctx context.Context, id string) error {
	return a.protected(ctx, func(ctx context.Context) error {
		ar, err := a.articleService.Publish(ctx, id)
		if err != nil {
			return err
		}
		a.printf("Published %s\n", ar.Slug)
		return nil
	})
}

func (a *App) Unpublish(ctx context.Context, id string) error {
	return a.protected(ctx, func(ctx context.Context) error {
		ar, err := a.articleService.Unpublish(ctx, id)
		if err != nil {
			return err
		}
		a.printf("Moved %s back to drafts\n", ar.Slug)
		return nil
	})
}

func (a *App) Stats(ctx context.Context) error {
	return a.protected(ctx, func(ctx context.Context) error {
		st, err := a.articleService.Stats(ctx)
		if err != nil {
			return err
		}
		a.printf("Articles: %d (published %d, drafts %d), views: %d\n", st.Total, st.Published, st.Drafts, st.Views)
		return nil
	})
}
