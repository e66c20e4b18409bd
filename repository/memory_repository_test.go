package repository_test

import (
	"context"
	"testing"

	"github.com/pr-poehali-dev/office-supply-webshop/models"
	"github.com/pr-poehali-dev/office-supply-webshop/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProductRepo_ReplaceAndFind(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepo()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	products := []models.Product{
		{ID: "1", Name: "Ручка", Category: "Письменные принадлежности"},
		{ID: "2", Name: "Блокнот", Category: "Тетради и блокноты"},
	}
	require.NoError(t, repo.ReplaceAll(ctx, products, []string{"Письменные принадлежности", "Тетради и блокноты"}))

	// caller mutation must not leak into the repo
	products[0].Name = "changed"

	got, err := repo.FindByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Ручка", got.Name)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "2", all[1].ID)

	cats, err := repo.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Письменные принадлежности", "Тетради и блокноты"}, cats)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestMemoryProductRepo_ReplaceDropsOldCatalog(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemoryProductRepo()
	require.NoError(t, repo.ReplaceAll(ctx, []models.Product{{ID: "old"}}, nil))
	require.NoError(t, repo.ReplaceAll(ctx, []models.Product{{ID: "new"}}, []string{"A"}))

	_, err := repo.FindByID(ctx, "old")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
	n, _ := repo.Count(ctx)
	assert.Equal(t, 1, n)
}
