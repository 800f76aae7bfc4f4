package handler

import (
	"net/http"

	"brand-pricing/internal/model"
	"brand-pricing/internal/service"

	"github.com/rs/zerolog"
)

// BrandHandler handles brand administration HTTP requests.
type BrandHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewBrandHandler creates a new brand handler.
func NewBrandHandler(service service.AdminService, logger zerolog.Logger) *BrandHandler {
	return &BrandHandler{
		service: service,
		logger:  logger.With().Str("handler", "brand").Logger(),
	}
}

// Register handles POST /admin/brands requests.
func (h *BrandHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.BrandRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	brand, err := h.service.RegisterBrand(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, brand)
}

// List handles GET /admin/brands requests.
func (h *BrandHandler) List(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.ListBrands(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, brands)
}
