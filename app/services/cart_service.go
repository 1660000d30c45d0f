package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/rakhadenta/gokart/app/helpers"
	"github.com/rakhadenta/gokart/app/models"
	"github.com/rakhadenta/gokart/app/repositories"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

type CartService struct {
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
}

func NewCartService(cartItemRepo repositories.CartItemRepositoryImpl, productRepo repositories.ProductRepositoryImpl) *CartService {
	return &CartService{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
	}
}

// GetUserCart returns the aggregate view of the user's cart rows joined with
// their products. A user with no rows gets an empty cart, not an error.
func (s *CartService) GetUserCart(ctx context.Context, userID string) (*models.Cart, error) {
	items, err := s.cartItemRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart items for user %s: %w", userID, err)
	}

	cart := &models.Cart{
		UserID: userID,
		Items:  make([]models.CartItem, 0, len(items)),
	}

	for _, item := range items {
		if item.Product == nil {
			log.Printf("GetUserCart: product %s missing for cart item of user %s, skipping", item.ProductID, userID)
			continue
		}
		item.Subtotal = item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		cart.GrandTotal = cart.GrandTotal.Add(item.Subtotal)
		cart.TotalItems += item.Quantity
		cart.Items = append(cart.Items, item)
	}
	cart.GrandTotalLabel = helpers.FormatPrice(cart.GrandTotal)

	return cart, nil
}

// AddItemToCart adds one unit of the product to the user's cart: a new row
// starts at quantity 1, an existing row is incremented by exactly 1.
func (s *CartService) AddItemToCart(ctx context.Context, userID, productID string) (*models.Cart, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product %s: %w", productID, err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if err := s.cartItemRepo.AddOrIncrement(ctx, userID, productID); err != nil {
		return nil, fmt.Errorf("failed to add product %s to cart: %w", productID, err)
	}

	return s.GetUserCart(ctx, userID)
}

// UpdateCartItemQty sets the quantity of an existing row to an absolute value.
// A missing row is not-found rather than an implicit insert; adding is what
// AddItemToCart is for.
func (s *CartService) UpdateCartItemQty(ctx context.Context, userID, productID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.cartItemRepo.GetByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item: %w", err)
	}
	if item == nil {
		return nil, ErrCartItemNotFound
	}

	item.Quantity = quantity
	if err := s.cartItemRepo.UpdateQuantity(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update cart item quantity: %w", err)
	}

	return s.GetUserCart(ctx, userID)
}

// ClearCart deletes every row for the user. Clearing an already empty cart is
// a no-op success.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if err := s.cartItemRepo.ClearByUserID(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
