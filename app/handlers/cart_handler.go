package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rakhadenta/gokart/app/helpers"
	"github.com/rakhadenta/gokart/app/services"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render      *render.Render
	cartService *services.CartService
}

func NewCartHandler(r *render.Render, cartService *services.CartService) *CartHandler {
	return &CartHandler{render: r, cartService: cartService}
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the caller's cart. Cart rows are only ever read through the
// authenticated principal, so one user can never reach another's cart.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	principal, ok := helpers.PrincipalFromContext(r.Context())
	if !ok {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
		return
	}

	cart, err := h.cartService.GetUserCart(r.Context(), principal.UserID)
	if err != nil {
		log.Printf("GetCart: failed for user %s: %v", principal.UserID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve cart"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cart)
}

// AddItem adds one unit of the product in the path to the caller's cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := helpers.PrincipalFromContext(r.Context())
	if !ok {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
		return
	}
	productID := mux.Vars(r)["id"]

	cart, err := h.cartService.AddItemToCart(r.Context(), principal.UserID, productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
			return
		}
		log.Printf("AddItem: failed for user %s product %s: %v", principal.UserID, productID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to add item to cart"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cart)
}

// UpdateItem sets the absolute quantity for an existing cart row.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	principal, ok := helpers.PrincipalFromContext(r.Context())
	if !ok {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
		return
	}
	productID := mux.Vars(r)["id"]

	var req UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	cart, err := h.cartService.UpdateCartItemQty(r.Context(), principal.UserID, productID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidQuantity):
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Quantity must be at least 1"})
		case errors.Is(err, services.ErrCartItemNotFound):
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Cart item not found"})
		default:
			log.Printf("UpdateItem: failed for user %s product %s: %v", principal.UserID, productID, err)
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update cart item"})
		}
		return
	}
	_ = h.render.JSON(w, http.StatusOK, cart)
}

// ClearCart empties the caller's cart; an already empty cart still succeeds.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	principal, ok := helpers.PrincipalFromContext(r.Context())
	if !ok {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Authentication required"})
		return
	}

	if err := h.cartService.ClearCart(r.Context(), principal.UserID); err != nil {
		log.Printf("ClearCart: failed for user %s: %v", principal.UserID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to clear cart"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
}
