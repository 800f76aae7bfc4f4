package repository

import (
	"context"

	"brand-pricing/internal/model"
)

// CatalogRepository defines the interface for durable catalogue storage.
// The in-memory engine remains the authoritative read path; the repository
// only absorbs write-through mutations and rebuilds the engine at startup.
type CatalogRepository interface {
	// EnsureSchema creates the catalogue tables when they do not exist.
	EnsureSchema(ctx context.Context) error

	// SaveBrand persists a newly registered brand.
	SaveBrand(ctx context.Context, brand model.Brand) error

	// SaveProduct persists a product upsert, replacing any prior price for
	// the same (brand, category) pair.
	SaveProduct(ctx context.Context, product model.ProductRecord) error

	// DeleteProduct removes a persisted product by id.
	DeleteProduct(ctx context.Context, id int64) error

	// LoadBrands retrieves every persisted brand.
	LoadBrands(ctx context.Context) ([]model.Brand, error)

	// LoadProducts retrieves every persisted product.
	LoadProducts(ctx context.Context) ([]model.ProductRecord, error)
}
