package handler

import (
	"net/http"
	"strconv"

	"brand-pricing/internal/model"
	"brand-pricing/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// ProductHandler handles product administration HTTP requests.
type ProductHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.AdminService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Upsert handles POST /admin/products requests. Registering an existing
// (brand, category) pair replaces its price and keeps the product id.
func (h *ProductHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req model.ProductRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	product, err := h.service.UpsertProduct(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, struct {
		ID int64 `json:"id"`
	}{ID: product.ID})
}

// Delete handles DELETE /admin/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid product ID", h.logger)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

// List handles GET /admin/products requests with optional brand and
// category filters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	brand := r.URL.Query().Get("brand")
	category := r.URL.Query().Get("category")

	products, err := h.service.ListProducts(r.Context(), brand, category)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, products)
}
