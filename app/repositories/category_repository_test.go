package repositories

import (
	"context"
	"testing"

	"github.com/rakhadenta/gokart/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryDeleteDetachesProducts(t *testing.T) {
	db := setupTestDB(t)
	categoryRepo := NewCategoryRepository(db)
	productRepo := NewProductRepository(db)
	ctx := context.Background()

	category := &models.Category{Name: "books", Slug: "books"}
	require.NoError(t, categoryRepo.Create(ctx, category))

	product := seedProduct(t, productRepo, "novel", "blue", "12.00", &category.ID)

	require.NoError(t, categoryRepo.Delete(ctx, category.ID))

	gone, err := categoryRepo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	// The product survives its category; the reference just goes away.
	survivor, err := productRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, survivor)
	assert.Nil(t, survivor.CategoryID)
}

func TestCategoryCrud(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := &models.Category{Name: "garden", Slug: "garden", Description: "outdoor things"}
	require.NoError(t, repo.Create(ctx, category))
	assert.NotEmpty(t, category.ID)

	loaded, err := repo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "garden", loaded.Name)

	loaded.Name = "garden & patio"
	loaded.Description = "everything outdoors"
	require.NoError(t, repo.Update(ctx, loaded))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "garden & patio", all[0].Name)

	bySlug, err := repo.GetBySlug(ctx, "garden")
	require.NoError(t, err)
	require.NotNil(t, bySlug)

	missing, err := repo.GetByID(ctx, "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
