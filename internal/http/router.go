package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/storefront-service-go/internal/cart"
	"github.com/andreasstove999/storefront-service-go/internal/locale"
	"github.com/andreasstove999/storefront-service-go/internal/middleware"
	"github.com/andreasstove999/storefront-service-go/internal/storefront"
)

type Deps struct {
	Logger *log.Logger

	Service *storefront.Service
	Store   *cart.Store
	Catalog ProductFetcher
	Bundle  locale.Bundle

	CORSAllowOrigins []string
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	// Middlewares (outer -> inner); correlation id sits outside Recover so a
	// panic body still carries the id.
	r.Use(middleware.CorrelationID)
	r.Use(middleware.Recover(d.Logger))
	r.Use(middleware.CORS(d.CORSAllowOrigins))
	r.Use(middleware.CartSession)
	r.Use(middleware.Logging(d.Logger))

	r.Get("/health", healthHandler)

	sf := NewStorefrontHandler(d.Service, d.Bundle)
	r.Route("/api/storefront", func(r chi.Router) {
		r.Get("/products", sf.ListProducts)
		r.Get("/products/last", sf.LastProducts)
		r.Get("/products/{id}", sf.GetProduct)
		r.Get("/categories", sf.ListCategories)
		r.Get("/locale", sf.Locale)
	})

	ch := NewCartHandler(d.Store, d.Catalog)
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", ch.GetCart)
		r.Post("/items", ch.AddItem)
		r.Put("/items/{productId}", ch.SetQuantity)
		r.Delete("/items/{productId}", ch.RemoveItem)
		r.Post("/open", ch.SetOpen)
		r.Post("/checkout", ch.Checkout)
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok", "service": "storefront-service"}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
