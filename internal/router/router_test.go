package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brand-pricing/internal/engine"
	"brand-pricing/internal/handler"
	"brand-pricing/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, apiKey string) http.Handler {
	t.Helper()
	logger := zerolog.Nop()

	store := engine.NewStore(logger)
	solver := engine.NewSolver(store, logger)
	adminService := service.NewAdminService(store, nil, logger)
	pricingService := service.NewPricingService(store, solver, logger)

	return New(
		handler.NewBrandHandler(adminService, logger),
		handler.NewProductHandler(adminService, logger),
		handler.NewPricingHandler(pricingService, logger),
		apiKey,
		logger,
	)
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "healthy"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AdminRoutesRequireAPIKey(t *testing.T) {
	router := newTestRouter(t, "secret")

	req := httptest.NewRequest(http.MethodPost, "/api/admin/brands", strings.NewReader(`{"name":"A"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/admin/brands", strings.NewReader(`{"name":"A"}`))
	req.Header.Set("X-API-Key", "secret")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_PricingRoutesArePublic(t *testing.T) {
	router := newTestRouter(t, "secret")

	// Empty store, so the solver reports the empty category; the point is
	// that the route resolves without an API key.
	req := httptest.NewRequest(http.MethodGet, "/api/products/lowest-prices", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_EndToEndFlow(t *testing.T) {
	router := newTestRouter(t, "")

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, do(http.MethodPost, "/api/admin/brands", `{"name":"A"}`).Code)
	require.Equal(t, http.StatusOK, do(http.MethodPost, "/api/admin/brands", `{"name":"B"}`).Code)

	for _, p := range []string{
		`{"brand":"A","category":"TOP","price":11200}`,
		`{"brand":"A","category":"PANTS","price":4200}`,
		`{"brand":"B","category":"TOP","price":10500}`,
		`{"brand":"B","category":"PANTS","price":3800}`,
	} {
		require.Equal(t, http.StatusOK, do(http.MethodPost, "/api/admin/products", p).Code)
	}

	rec := do(http.MethodPost, "/api/products/cheapest-brand", `{"categories":["TOP","PANTS"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    []struct {
			Brand string `json:"brand"`
			Total int    `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "B", resp.Data[0].Brand)
	assert.Equal(t, 14300, resp.Data[0].Total)

	rec = do(http.MethodGet, "/api/products/categories/TOP/price-range", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(http.MethodDelete, "/api/admin/products/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
