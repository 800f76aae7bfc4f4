package repository

import (
	"context"
	"fmt"

	"brand-pricing/internal/catalog"
	"brand-pricing/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// catalogRepository implements CatalogRepository using PostgreSQL.
type catalogRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCatalogRepository creates a new PostgreSQL-backed catalogue repository.
func NewCatalogRepository(pool *pgxpool.Pool, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
}

// EnsureSchema creates the catalogue tables when they do not exist.
func (r *catalogRepository) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS brands (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		);
		CREATE TABLE IF NOT EXISTS products (
			id BIGINT PRIMARY KEY,
			brand_id BIGINT NOT NULL REFERENCES brands(id),
			category TEXT NOT NULL,
			price INTEGER NOT NULL CHECK (price > 0),
			UNIQUE (brand_id, category)
		);
	`

	if _, err := r.pool.Exec(ctx, schema); err != nil {
		r.logger.Error().Err(err).Msg("failed to ensure schema")
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	return nil
}

// SaveBrand persists a newly registered brand.
func (r *catalogRepository) SaveBrand(ctx context.Context, brand model.Brand) error {
	query := `
		INSERT INTO brands (id, name)
		VALUES ($1, $2)
	`

	if _, err := r.pool.Exec(ctx, query, brand.ID, brand.Name); err != nil {
		r.logger.Error().Err(err).Int64("brand_id", brand.ID).Msg("failed to insert brand")
		return fmt.Errorf("failed to insert brand: %w", err)
	}
	return nil
}

// SaveProduct persists a product upsert keyed by (brand, category).
func (r *catalogRepository) SaveProduct(ctx context.Context, product model.ProductRecord) error {
	query := `
		INSERT INTO products (id, brand_id, category, price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (brand_id, category) DO UPDATE SET price = EXCLUDED.price
	`

	_, err := r.pool.Exec(ctx, query, product.ID, product.BrandID, string(product.Category), product.Price)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", product.ID).Msg("failed to upsert product")
		return fmt.Errorf("failed to upsert product: %w", err)
	}
	return nil
}

// DeleteProduct removes a persisted product by id.
func (r *catalogRepository) DeleteProduct(ctx context.Context, id int64) error {
	query := `
		DELETE FROM products
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int64("product_id", id).Msg("product not persisted")
	}
	return nil
}

// LoadBrands retrieves every persisted brand.
func (r *catalogRepository) LoadBrands(ctx context.Context) ([]model.Brand, error) {
	query := `
		SELECT id, name
		FROM brands
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query brands")
		return nil, fmt.Errorf("failed to query brands: %w", err)
	}
	defer rows.Close()

	var brands []model.Brand
	for rows.Next() {
		var b model.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan brand row")
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, b)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating brand rows")
		return nil, fmt.Errorf("error iterating brands: %w", err)
	}

	return brands, nil
}

// LoadProducts retrieves every persisted product.
func (r *catalogRepository) LoadProducts(ctx context.Context) ([]model.ProductRecord, error) {
	query := `
		SELECT id, brand_id, category, price
		FROM products
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.ProductRecord
	for rows.Next() {
		var p model.ProductRecord
		var category string
		if err := rows.Scan(&p.ID, &p.BrandID, &category, &p.Price); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		p.Category = catalog.Category(category)
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
