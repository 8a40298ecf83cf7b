package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/sitecms/internal/client/client"
	"github.com/dmitrijs2005/sitecms/internal/models"
)

func TestCategories_DeleteRefusesLastOne(t *testing.T) {
	api := newFakeAPI()
	svc := NewCategoryService(api)

	var errs []error
	for _, known := range [][]models.Category{nil, {{ID: "only", Name: "Only"}}} {
		err := svc.Delete(context.Background(), "only", known)
		require.ErrorIs(t, err, ErrLastCategory)
		require.ErrorIs(t, err, client.ErrValidation)
		assert.EqualError(t, err, "at least one category must remain")
		errs = append(errs, err)
	}
	assert.NotSame(t, errs[0], errs[1])
	assert.Empty(t, api.requests, "no DELETE may be sent")
}

func TestCategories_Delete(t *testing.T) {
	api := newFakeAPI()

	err := NewCategoryService(api).Delete(context.Background(), "design", models.DefaultCategories())
	require.NoError(t, err)
	r := api.last()
	assert.Equal(t, http.MethodDelete, r.Method)
	assert.Equal(t, "/admin/categories/design", r.Path)
	assert.True(t, r.Auth)
}

func TestCategories_Create(t *testing.T) {
	ctx := context.Background()
	api := newFakeAPI()
	api.resp = models.Category{ID: "news", Name: "News"}
	svc := NewCategoryService(api)
	known := models.DefaultCategories()

	_, err := svc.Create(ctx, models.Category{ID: "technology", Name: "Tech"}, known)
	require.ErrorIs(t, err, client.ErrValidation)
	assert.Contains(t, err.Error(), "already exists")

	_, err = svc.Create(ctx, models.Category{ID: "Bad Id", Name: "x"}, known)
	require.ErrorIs(t, err, client.ErrValidation)
	assert.Empty(t, api.requests)

	c, err := svc.Create(ctx, models.Category{ID: " news ", Name: " News "}, known)
	require.NoError(t, err)
	assert.Equal(t, "news", c.ID)
	assert.Equal(t, models.Category{ID: "news", Name: "News"}, api.last().Body)
}

func TestCategories_Lists(t *testing.T) {
	api := newFakeAPI()
	api.resp = models.DefaultCategories()
	svc := NewCategoryService(api)

	cats, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, cats, 4)
	assert.False(t, api.last().Auth)

	_, err = svc.AdminList(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/admin/categories", api.last().Path)
	assert.True(t, api.last().Auth)
}
