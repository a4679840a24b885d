package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/storefront-api/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	// State-changing endpoints answer bad methods with a JSON payload
	// instead of a bare 405 body.
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "method not allowed",
		})
	})

	// Public storefront
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Get("/stores", handlers.GetStoresHandler)
	r.Get("/blog", handlers.GetBlogPostsHandler)
	r.Get("/blog/{id}", handlers.GetBlogPostByIDHandler)

	// Auth
	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
		r.Post("/refresh", handlers.RefreshHandler)
	})

	// Any authenticated user
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Get("/account", handlers.GetAccountHandler)
	})

	// Dashboard (admin only)
	r.Route("/dashboard", func(r chi.Router) {
		r.Use(AuthMiddleware, RequireAdmin)
		r.Get("/", handlers.GetDashboardOverviewHandler)
		r.Get("/products", handlers.FilterProductsHandler)
		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Post("/products/{id}/toggle-status", handlers.ToggleProductStatusHandler)
		r.Post("/products/import", handlers.ImportProductsHandler)
		r.Post("/earnings", handlers.RecordEarningsHandler)
		r.Get("/customers", handlers.GetCustomersHandler)
		r.Post("/categories", handlers.CreateCategoryHandler)
		r.Post("/stores", handlers.CreateStoreHandler)
		r.Post("/blog", handlers.CreateBlogPostHandler)
	})

	return r
}
