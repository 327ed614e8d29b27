package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	RequestTimeout time.Duration

	Carts     CartService
	Checkout  CheckoutService
	Returns   ReturnService
	Inventory InventoryService
	Products  ProductService
	Admin     ProductAdminService
	Stores    StoreService
	Auth      AuthService
	Customers CustomerService
	Stats     StatsService
}

// NewRouter builds the full route table with the global middleware stack.
func NewRouter(cfg RouterConfig) chi.Router {
	cartHandler := NewCartHandler(cfg.Carts, cfg.RequestTimeout)
	ordersHandler := NewOrdersHandler(cfg.Checkout, cfg.Returns, cfg.RequestTimeout)
	adminHandler := NewAdminHandler(cfg.Inventory, cfg.Admin, cfg.RequestTimeout)
	productHandler := NewProductHandler(cfg.Products, cfg.Stores, cfg.RequestTimeout)
	authHandler := NewAuthHandler(cfg.Auth, cfg.Customers, cfg.RequestTimeout)
	statsHandler := NewStatsHandler(cfg.Stats, cfg.RequestTimeout)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartHandler.GetCart)
		r.Post("/add_to_cart", cartHandler.AddToCart)
		r.Put("/items/{id}", cartHandler.UpdateItem)
		r.Delete("/items/{id}", cartHandler.RemoveItem)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", ordersHandler.ListOrders)
		r.Post("/checkout", ordersHandler.Checkout)
		r.Get("/{id}", ordersHandler.GetOrder)
		r.Post("/{id}/return", ordersHandler.Return)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/inventory/adjust", adminHandler.AdjustInventory)
		r.Post("/products", adminHandler.CreateProduct)
		r.Patch("/products/{id}", adminHandler.UpdateProduct)
		r.Delete("/products/{id}", adminHandler.DeleteProduct)
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.ListProducts)
		r.Get("/{id}", productHandler.GetProduct)
	})

	r.Get("/stores", productHandler.ListStores)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/change_password", authHandler.ChangePassword)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Get("/me", authHandler.GetProfile)
		r.Patch("/me", authHandler.UpdateProfile)
	})

	r.Route("/stats", func(r chi.Router) {
		r.Get("/top-sellers", statsHandler.TopSellers)
		r.Get("/best-region", statsHandler.BestRegion)
		r.Get("/revenue/daily", statsHandler.DailyRevenue)
	})

	return r
}
