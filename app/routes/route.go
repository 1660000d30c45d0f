package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rakhadenta/gokart/app/handlers"
	"github.com/rakhadenta/gokart/app/middlewares"
	"github.com/rakhadenta/gokart/app/repositories"
	"github.com/rakhadenta/gokart/app/services"
	"github.com/rakhadenta/gokart/app/utils/token"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, tokenMaker *token.Maker) *mux.Router {
	rnd := render.New()
	validate := validator.New()

	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)

	cartService := services.NewCartService(cartItemRepo, productRepo)

	authHandler := handlers.NewAuthHandler(rnd, userRepo, tokenMaker, validate)
	categoryHandler := handlers.NewCategoryHandler(rnd, categoryRepo, validate)
	productHandler := handlers.NewProductHandler(rnd, productRepo, categoryRepo, validate)
	cartHandler := handlers.NewCartHandler(rnd, cartService)

	router := mux.NewRouter()

	// Public surface.
	public := router.NewRoute().Subrouter()
	public.HandleFunc("/register", authHandler.Register).Methods("POST")
	public.HandleFunc("/login", authHandler.Login).Methods("POST")
	public.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	public.HandleFunc("/categories/{id}", categoryHandler.Get).Methods("GET")
	public.HandleFunc("/products", productHandler.List).Methods("GET")
	public.HandleFunc("/products/{id}", productHandler.Get).Methods("GET")

	// Cart endpoints act on the authenticated user's own rows.
	authenticated := router.NewRoute().Subrouter()
	authenticated.Use(middlewares.AuthMiddleware(tokenMaker, rnd))
	authenticated.HandleFunc("/cart", cartHandler.GetCart).Methods("GET")
	authenticated.HandleFunc("/cart", cartHandler.ClearCart).Methods("DELETE")
	authenticated.HandleFunc("/cart/products/{id}", cartHandler.AddItem).Methods("POST")
	authenticated.HandleFunc("/cart/products/{id}", cartHandler.UpdateItem).Methods("PUT")

	// Catalog mutations require the admin role.
	admin := router.NewRoute().Subrouter()
	admin.Use(middlewares.AuthMiddleware(tokenMaker, rnd), middlewares.AdminMiddleware(rnd))
	admin.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	admin.HandleFunc("/categories/{id}", categoryHandler.Update).Methods("PUT")
	admin.HandleFunc("/categories/{id}", categoryHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/products", productHandler.Create).Methods("POST")
	admin.HandleFunc("/products/{id}", productHandler.Update).Methods("PUT")
	admin.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")

	return router
}
