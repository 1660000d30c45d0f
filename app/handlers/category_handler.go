package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gosimple/slug"
	"github.com/rakhadenta/gokart/app/helpers"
	"github.com/rakhadenta/gokart/app/models"
	"github.com/rakhadenta/gokart/app/repositories"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	render    *render.Render
	repo      repositories.CategoryRepositoryImpl
	validator *validator.Validate
}

func NewCategoryHandler(r *render.Render, repo repositories.CategoryRepositoryImpl, validator *validator.Validate) *CategoryHandler {
	return &CategoryHandler{render: r, repo: repo, validator: validator}
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=1000"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAll(r.Context())
	if err != nil {
		log.Printf("List: failed to get categories: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve categories"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("Get: failed to get category %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve category"})
		return
	}
	if category == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Category not found"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        slug.Make(req.Name),
		Description: req.Description,
	}

	if err := h.repo.Create(r.Context(), category); err != nil {
		log.Printf("Create: failed to create category %s: %v", req.Name, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create category"})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, category)
}

// Update fully replaces the mutable fields of an existing category. The row is
// loaded first so an unknown id answers 404 instead of inserting.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	req, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	category, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("Update: failed to get category %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve category"})
		return
	}
	if category == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Category not found"})
		return
	}

	if category.Name != req.Name {
		category.Slug = slug.Make(req.Name)
	}
	category.Name = req.Name
	category.Description = req.Description

	if err := h.repo.Update(r.Context(), category); err != nil {
		log.Printf("Update: failed to update category %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to update category"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	category, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("Delete: failed to get category %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve category"})
		return
	}
	if category == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "Category not found"})
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		log.Printf("Delete: failed to delete category %s: %v", id, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete category"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"message": "Category deleted"})
}

func (h *CategoryHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request) (CategoryRequest, bool) {
	var req CategoryRequest
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
	return req, true
}
