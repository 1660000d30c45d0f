package services

import (
	"context"
	"testing"

	"github.com/rakhadenta/gokart/app/models"
	"github.com/rakhadenta/gokart/app/models/migrations"
	"github.com/rakhadenta/gokart/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupCartService(t *testing.T) (*CartService, repositories.ProductRepositoryImpl) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := migrations.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	productRepo := repositories.NewProductRepository(db)
	return NewCartService(repositories.NewCartItemRepository(db), productRepo), productRepo
}

func createProduct(t *testing.T, repo repositories.ProductRepositoryImpl, name, price string) *models.Product {
	t.Helper()

	product := &models.Product{
		Name:  name,
		Slug:  name,
		Sku:   "sku-" + name,
		Price: decimal.RequireFromString(price),
		Stock: 10,
	}
	require.NoError(t, repo.Create(context.Background(), product))
	return product
}

func TestGetUserCartEmpty(t *testing.T) {
	svc, _ := setupCartService(t)

	cart, err := svc.GetUserCart(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalItems)
	assert.True(t, cart.GrandTotal.IsZero())
}

func TestAddItemToCartTwice(t *testing.T) {
	svc, productRepo := setupCartService(t)
	ctx := context.Background()

	product := createProduct(t, productRepo, "lamp", "19.99")

	_, err := svc.AddItemToCart(ctx, "user-1", product.ID)
	require.NoError(t, err)

	cart, err := svc.AddItemToCart(ctx, "user-1", product.ID)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, product.ID, cart.Items[0].ProductID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 2, cart.TotalItems)
	assert.True(t, cart.GrandTotal.Equal(decimal.RequireFromString("39.98")))
	assert.NotEmpty(t, cart.GrandTotalLabel)
}

func TestAddItemToCartUnknownProduct(t *testing.T) {
	svc, _ := setupCartService(t)

	_, err := svc.AddItemToCart(context.Background(), "user-1", "no-such-product")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateCartItemQty(t *testing.T) {
	svc, productRepo := setupCartService(t)
	ctx := context.Background()

	product := createProduct(t, productRepo, "lamp", "10.00")

	_, err := svc.AddItemToCart(ctx, "user-1", product.ID)
	require.NoError(t, err)

	cart, err := svc.UpdateCartItemQty(ctx, "user-1", product.ID, 5)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.True(t, cart.GrandTotal.Equal(decimal.RequireFromString("50.00")))
}

func TestUpdateCartItemQtyMissingRowIsNotFound(t *testing.T) {
	svc, productRepo := setupCartService(t)

	product := createProduct(t, productRepo, "lamp", "10.00")

	// Updating must never turn into an insert.
	_, err := svc.UpdateCartItemQty(context.Background(), "user-1", product.ID, 3)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	cart, err := svc.GetUserCart(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestUpdateCartItemQtyRejectsZero(t *testing.T) {
	svc, productRepo := setupCartService(t)
	ctx := context.Background()

	product := createProduct(t, productRepo, "lamp", "10.00")
	_, err := svc.AddItemToCart(ctx, "user-1", product.ID)
	require.NoError(t, err)

	_, err = svc.UpdateCartItemQty(ctx, "user-1", product.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestClearCartThenGetIsEmpty(t *testing.T) {
	svc, productRepo := setupCartService(t)
	ctx := context.Background()

	first := createProduct(t, productRepo, "lamp", "10.00")
	second := createProduct(t, productRepo, "desk", "75.00")

	_, err := svc.AddItemToCart(ctx, "user-1", first.ID)
	require.NoError(t, err)
	_, err = svc.AddItemToCart(ctx, "user-1", second.ID)
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx, "user-1"))

	cart, err := svc.GetUserCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.GrandTotal.IsZero())

	// Clearing again is still fine.
	require.NoError(t, svc.ClearCart(ctx, "user-1"))
}
