package handler

import (
	"net/http"

	"brand-pricing/internal/model"
	"brand-pricing/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// PricingHandler handles customer-facing price query requests.
type PricingHandler struct {
	service service.PricingService
	logger  zerolog.Logger
}

// NewPricingHandler creates a new pricing handler.
func NewPricingHandler(service service.PricingService, logger zerolog.Logger) *PricingHandler {
	return &PricingHandler{
		service: service,
		logger:  logger.With().Str("handler", "pricing").Logger(),
	}
}

// LowestPrices handles GET /products/lowest-prices requests.
func (h *PricingHandler) LowestPrices(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.LowestPrices(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, resp)
}

// PriceRange handles GET /products/categories/{category}/price-range
// requests.
func (h *PricingHandler) PriceRange(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		writeFailure(w, http.StatusBadRequest, "category is required", h.logger)
		return
	}

	resp, err := h.service.PriceRange(r.Context(), category)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, resp)
}

// CheapestBrand handles POST /products/cheapest-brand requests.
func (h *PricingHandler) CheapestBrand(w http.ResponseWriter, r *http.Request) {
	var req model.CheapestBrandRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	results, err := h.service.CheapestBrand(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, results)
}
