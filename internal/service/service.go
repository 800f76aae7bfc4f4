package service

import (
	"context"

	"brand-pricing/internal/model"
)

// AdminService defines the brand and product management operations behind
// the admin endpoints.
type AdminService interface {
	// RegisterBrand registers a new brand name.
	RegisterBrand(ctx context.Context, req *model.BrandRequest) (model.Brand, error)

	// ListBrands retrieves every registered brand.
	ListBrands(ctx context.Context) ([]model.Brand, error)

	// UpsertProduct registers a price for a (brand, category) pair,
	// replacing any prior price for the pair.
	UpsertProduct(ctx context.Context, req *model.ProductRequest) (model.Product, error)

	// DeleteProduct removes a live product by id.
	DeleteProduct(ctx context.Context, id int64) error

	// ListProducts retrieves live products, optionally filtered by brand
	// name substring and category label.
	ListProducts(ctx context.Context, brandSubstring, categoryLabel string) ([]model.Product, error)
}

// PricingService defines the customer-facing price queries.
type PricingService interface {
	// LowestPrices reports the cheapest brand(s) per catalogue category
	// and the total of the per-category minima.
	LowestPrices(ctx context.Context) (*model.LowestPricesResponse, error)

	// PriceRange reports every brand tied at the minimum and maximum
	// price of one category.
	PriceRange(ctx context.Context, categoryLabel string) (*model.PriceRangeResponse, error)

	// CheapestBrand reports the single brand(s) with the lowest total that
	// cover every requested category on their own.
	CheapestBrand(ctx context.Context, req *model.CheapestBrandRequest) ([]model.BrandTotal, error)
}
