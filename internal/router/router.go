package router

import (
	"net/http"

	"brand-pricing/internal/handler"
	"brand-pricing/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// Admin routes sit behind API key auth; the pricing routes are public.
func New(
	brandHandler *handler.BrandHandler,
	productHandler *handler.ProductHandler,
	pricingHandler *handler.PricingHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware order: Recovery outermost so it catches everything,
	// RequestID before Logging so log lines carry the id.
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS)

	// Health check endpoint (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(apiKey, logger))

			r.Post("/brands", brandHandler.Register)
			r.Get("/brands", brandHandler.List)
			r.Post("/products", productHandler.Upsert)
			r.Get("/products", productHandler.List)
			r.Delete("/products/{id}", productHandler.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/lowest-prices", pricingHandler.LowestPrices)
			r.Get("/categories/{category}/price-range", pricingHandler.PriceRange)
			r.Post("/cheapest-brand", pricingHandler.CheapestBrand)
		})
	})

	return r
}
