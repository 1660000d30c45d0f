package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rakhadenta/gokart/app/helpers"
	"github.com/rakhadenta/gokart/app/models"
	"github.com/rakhadenta/gokart/app/repositories"
	"github.com/rakhadenta/gokart/app/utils/token"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render     *render.Render
	userRepo   repositories.UserRepositoryImpl
	tokenMaker *token.Maker
	validator  *validator.Validate
}

func NewAuthHandler(r *render.Render, userRepo repositories.UserRepositoryImpl, tokenMaker *token.Maker, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		render:     r,
		userRepo:   userRepo,
		tokenMaker: tokenMaker,
		validator:  validator,
	}
}

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string `json:"last_name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *models.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "Validation failed",
				"errors": helpers.FormatValidationErrors(errs),
			})
			return
		}
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Validation failed"})
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Register: error checking email %s: %v", req.Email, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}
	if existing != nil {
		_ = h.render.JSON(w, http.StatusConflict, map[string]string{"error": "Email is already registered"})
		return
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      models.RoleCustomer,
	}

	if err := h.userRepo.Create(r.Context(), user); err != nil {
		log.Printf("Register: failed to create user %s: %v", req.Email, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create account"})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "Validation failed",
				"errors": helpers.FormatValidationErrors(errs),
			})
			return
		}
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Validation failed"})
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Login: error getting user by email %s: %v", req.Email, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
		return
	}

	// Unknown email and wrong password get the same answer.
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(req.Password)) {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
		return
	}

	signed, expiresAt, err := h.tokenMaker.Issue(user.ID, user.Role)
	if err != nil {
		log.Printf("Login: failed to issue token for user %s: %v", user.ID, err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create session"})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      user,
	})
}
