package repositories

import (
	"context"
	"testing"

	"github.com/rakhadenta/gokart/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProduct(t *testing.T, repo ProductRepositoryImpl, name, color string, price string, categoryID *string) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:       name,
		Slug:       name,
		Sku:        "sku-" + name,
		Price:      decimal.RequireFromString(price),
		Stock:      10,
		Color:      color,
		CategoryID: categoryID,
	}
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}

func TestGetFilteredPriceRangeIsInclusive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seedProduct(t, repo, "below", "red", "9.99", nil)
	lower := seedProduct(t, repo, "lower-bound", "red", "10.00", nil)
	mid := seedProduct(t, repo, "middle", "red", "15.50", nil)
	upper := seedProduct(t, repo, "upper-bound", "red", "20.00", nil)
	seedProduct(t, repo, "above", "red", "20.01", nil)

	min := decimal.RequireFromString("10.00")
	max := decimal.RequireFromString("20.00")

	products, err := repo.GetFiltered(ctx, ProductFilter{MinPrice: &min, MaxPrice: &max})
	require.NoError(t, err)
	require.Len(t, products, 3)

	ids := map[string]bool{}
	for _, p := range products {
		ids[p.ID] = true
		assert.True(t, p.Price.GreaterThanOrEqual(min), "price %s below min", p.Price)
		assert.True(t, p.Price.LessThanOrEqual(max), "price %s above max", p.Price)
	}
	assert.True(t, ids[lower.ID])
	assert.True(t, ids[mid.ID])
	assert.True(t, ids[upper.ID])
}

func TestGetFilteredCombinesFiltersWithAnd(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	categoryRepo := NewCategoryRepository(db)
	ctx := context.Background()

	category := &models.Category{Name: "shoes", Slug: "shoes"}
	require.NoError(t, categoryRepo.Create(ctx, category))

	match := seedProduct(t, repo, "red-shoe", "red", "50.00", &category.ID)
	seedProduct(t, repo, "blue-shoe", "blue", "50.00", &category.ID)
	seedProduct(t, repo, "red-hat", "red", "50.00", nil)
	seedProduct(t, repo, "red-cheap-shoe", "red", "5.00", &category.ID)

	min := decimal.RequireFromString("10.00")
	products, err := repo.GetFiltered(ctx, ProductFilter{
		CategoryID: category.ID,
		Color:      "red",
		MinPrice:   &min,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, match.ID, products[0].ID)
}

func TestUpdateNeverChangesProductCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	var target *models.Product
	for i := 0; i < 5; i++ {
		target = seedProduct(t, repo, "product-"+string(rune('a'+i)), "red", "10.00", nil)
	}

	before, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 5, before)

	target.Price = decimal.RequireFromString("42.00")
	target.Name = "renamed"
	require.NoError(t, repo.Update(ctx, target))

	after, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	reloaded, err := repo.GetByID(ctx, target.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.Equal(t, "renamed", reloaded.Name)
	assert.True(t, reloaded.Price.Equal(decimal.RequireFromString("42.00")))
}

func TestGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProductRepository(db)

	product, err := repo.GetByID(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, product)
}
