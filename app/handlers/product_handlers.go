package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gosimple/slug"
	"github.com/rakhadenta/gokart/app/helpers"
	"github.com/rakhadenta/gokart/app/models"
	"github.com/rakhadenta/gokart/app/repositories"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	render       *render.Render
	repo         repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	validator    *validator.Validate
}

func NewProductHandler(r *render.Render, repo repositories.ProductRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl, validator *validator.Validate) *ProductHandler {
	return &ProductHandler{render: r, repo: repo, categoryRepo: categoryRepo, validator: validator}
}

type ProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=255"`
	Description string          `json:"description"`
	Sku         string          `json:"sku" validate:"max=100"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" validate:"gte=0"`
	Color       string          `json:"color" validate:"max=50"`
	Image       string          `json:"image" validate:"max=255"`
	IsFeatured  bool            `json:"is_featured"`
	CategoryID  *string         `json:"category_id"`
}

// List applies the optional query filters: cat, minPrice, maxPrice, color.
// All supplied filters combine with AND; both price bounds are inclusive.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := repositories.ProductFilter{
		CategoryID: r.URL.Query().Get("cat"),
		Color:      r.URL.Query().Get("color"),
	}

	if raw := r.URL.Query().Get("minPrice"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "minPrice must be a decimal number"})
			return
		}
		filter.MinPrice = &min
	}
	if raw := r.URL.Query().Get("maxPrice"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "maxPrice must be a decimal number"})
			return
		}
		filter.MaxPrice = &max
	}

	products, err := h.repo.GetFiltered(r.Context(), filter)
	if err != nil {
		log.Printf("List: failed to get products: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve products"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("Get: failed to get product %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve product"})
		return
	}
	if product == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	productSlug := slug.Make(fmt.Sprintf("%s-%s", req.Name, uuid.NewString()[:8]))

	// The slug carries a random suffix, so it doubles as a unique sku default.
	sku := req.Sku
	if sku == "" {
		sku = productSlug
	}

	product := &models.Product{
		Name:        req.Name,
		Slug:        productSlug,
		Sku:         sku,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Color:       req.Color,
		Image:       req.Image,
		IsFeatured:  req.IsFeatured,
		CategoryID:  req.CategoryID,
	}

	if err := h.repo.Create(r.Context(), product); err != nil {
		log.Printf("Create: failed to create product %s: %v", req.Name, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create product"})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, product)
}

// Update mutates the existing row in place. The product is loaded by id and
// saved back under the same primary key; the create path is never taken, so an
// update can never grow the catalog.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	req, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("Update: failed to get product %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve product"})
		return
	}
	if product == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
		return
	}

	if product.Name != req.Name {
		product.Slug = slug.Make(fmt.Sprintf("%s-%s", req.Name, uuid.NewString()[:8]))
	}
	product.Name = req.Name
	if req.Sku != "" {
		product.Sku = req.Sku
	}
	product.Description = req.Description
	product.Price = req.Price
	product.Stock = req.Stock
	product.Color = req.Color
	product.Image = req.Image
	product.IsFeatured = req.IsFeatured
	product.CategoryID = req.CategoryID
	product.Category = nil

	if err := h.repo.Update(r.Context(), product); err != nil {
		log.Printf("Update: failed to update product %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update product"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	product, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("Delete: failed to get product %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve product"})
		return
	}
	if product == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		log.Printf("Delete: failed to delete product %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete product"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

func (h *ProductHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request) (ProductRequest, bool) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return req, false
	}

	if err := h.validator.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "Validation failed",
				"errors": helpers.FormatValidationErrors(errs),
			})
			return req, false
		}
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Validation failed"})
		return req, false
	}

	if req.Price.IsNegative() {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Price must not be negative"})
		return req, false
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		category, err := h.categoryRepo.GetByID(r.Context(), *req.CategoryID)
		if err != nil {
			log.Printf("decodeAndValidate: failed to check category %s: %v", *req.CategoryID, err)
			_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to validate category"})
			return req, false
		}
		if category == nil {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Category does not exist"})
			return req, false
		}
	}

	return req, true
}
