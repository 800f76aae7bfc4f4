package service

import (
	"context"
	"strings"

	"brand-pricing/internal/catalog"
	"brand-pricing/internal/engine"
	"brand-pricing/internal/model"
	"brand-pricing/internal/repository"

	"github.com/rs/zerolog"
)

// adminService implements AdminService over the in-memory store with
// optional write-through persistence.
type adminService struct {
	store  *engine.Store
	repo   repository.CatalogRepository
	logger zerolog.Logger
}

// NewAdminService creates a new admin service. repo may be nil, in which
// case the catalogue lives in memory only.
func NewAdminService(store *engine.Store, repo repository.CatalogRepository, logger zerolog.Logger) AdminService {
	return &adminService{
		store:  store,
		repo:   repo,
		logger: logger.With().Str("service", "admin").Logger(),
	}
}

// RegisterBrand registers a new brand name.
func (s *adminService) RegisterBrand(ctx context.Context, req *model.BrandRequest) (model.Brand, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.Brand{}, model.ErrInvalidInput
	}

	brand, err := s.store.RegisterBrand(name)
	if err != nil {
		s.logger.Warn().Err(err).Str("brand", name).Msg("brand registration rejected")
		return model.Brand{}, err
	}

	if s.repo != nil {
		if err := s.repo.SaveBrand(ctx, brand); err != nil {
			// The engine stays authoritative; a persistence failure costs
			// durability across restarts, not correctness.
			s.logger.Error().Err(err).Int64("brand_id", brand.ID).Msg("failed to persist brand")
		}
	}

	s.logger.Info().Int64("brand_id", brand.ID).Str("brand", brand.Name).Msg("brand registered")
	return brand, nil
}

// ListBrands retrieves every registered brand.
func (s *adminService) ListBrands(ctx context.Context) ([]model.Brand, error) {
	return s.store.ListBrands(), nil
}

// UpsertProduct registers a price for a (brand, category) pair.
func (s *adminService) UpsertProduct(ctx context.Context, req *model.ProductRequest) (model.Product, error) {
	category, ok := catalog.Parse(req.Category)
	if !ok {
		s.logger.Warn().Str("category", req.Category).Msg("unknown category label")
		return model.Product{}, model.InvalidCategoryError(req.Category)
	}

	product, err := s.store.UpsertProduct(req.Brand, category, req.Price)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("brand", req.Brand).
			Str("category", string(category)).
			Int("price", req.Price).
			Msg("product upsert rejected")
		return model.Product{}, err
	}

	if s.repo != nil {
		brand, _ := s.store.BrandByName(product.Brand)
		record := model.ProductRecord{
			ID:       product.ID,
			BrandID:  brand.ID,
			Category: product.Category,
			Price:    product.Price,
		}
		if err := s.repo.SaveProduct(ctx, record); err != nil {
			s.logger.Error().Err(err).Int64("product_id", product.ID).Msg("failed to persist product")
		}
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Str("brand", product.Brand).
		Str("category", string(product.Category)).
		Int("price", product.Price).
		Msg("product upserted")
	return product, nil
}

// DeleteProduct removes a live product by id.
func (s *adminService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.store.DeleteProduct(id); err != nil {
		s.logger.Warn().Err(err).Int64("product_id", id).Msg("product delete rejected")
		return err
	}

	if s.repo != nil {
		if err := s.repo.DeleteProduct(ctx, id); err != nil {
			s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete persisted product")
		}
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

// ListProducts retrieves live products matching the optional filters.
func (s *adminService) ListProducts(ctx context.Context, brandSubstring, categoryLabel string) ([]model.Product, error) {
	filter := model.ProductFilter{BrandSubstring: strings.TrimSpace(brandSubstring)}

	if categoryLabel != "" {
		category, ok := catalog.Parse(categoryLabel)
		if !ok {
			return nil, model.InvalidCategoryError(categoryLabel)
		}
		filter.Category = category
	}

	products := s.store.ListProducts(filter)
	s.logger.Debug().
		Int("count", len(products)).
		Str("brand_filter", filter.BrandSubstring).
		Str("category_filter", string(filter.Category)).
		Msg("listed products")
	return products, nil
}
