package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/sitecms/internal/models"
)

func (a *App) Categories(ctx context.Context) error {
	cats, err := a.categoryService.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range cats {
		a.printf("%-20s %s\n", c.ID, c.Name)
	}
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	return a.protected(ctx, func(ctx context.Context) error {
		known, err := a.categoryService.AdminList(ctx)
		if err != nil {
			return err
		}
		id, err := getSimpleText(a.reader, "Category id (slug)", a.out)
		if err != nil {
			return err
		}
		name, err := getSimpleText(a.reader, "Category name", a.out)
		if err != nil {
			return err
		}
		c, err := a.categoryService.Create(ctx, models.Category{ID: id, Name: name}, known)
		if err != nil {
			return err
		}
		a.printf("Added category %s\n", c.ID)
		return nil
	})
}

func (a *App) DeleteCategory(ctx context.Context, id string) error {
	return a.protected(ctx, func(ctx context.Context) error {
		known, err := a.categoryService.AdminList(ctx)
		if err != nil {
			return err
		}
		ok, err := getConfirm(a.reader, fmt.Sprintf("Delete category %s?", id), a.out)
		if err != nil || !ok {
			return err
		}
		if err := a.categoryService.Delete(ctx, id, known); err != nil {
			return err
		}
		printlnFn("Deleted.")
		return nil
	})
}
