package service

import (
	"context"
	"sort"

	"brand-pricing/internal/catalog"
	"brand-pricing/internal/engine"
	"brand-pricing/internal/model"

	"github.com/rs/zerolog"
)

// pricingService implements PricingService over the solver and the
// per-category indexes.
type pricingService struct {
	store  *engine.Store
	solver *engine.Solver
	logger zerolog.Logger
}

// NewPricingService creates a new pricing service.
func NewPricingService(store *engine.Store, solver *engine.Solver, logger zerolog.Logger) PricingService {
	return &pricingService{
		store:  store,
		solver: solver,
		logger: logger.With().Str("service", "pricing").Logger(),
	}
}

// LowestPrices reports the cheapest brand(s) for every catalogue category
// and the total of the minima.
func (s *pricingService) LowestPrices(ctx context.Context) (*model.LowestPricesResponse, error) {
	resp, err := s.solver.CheapestPerCategoryTotal(catalog.All())
	if err != nil {
		s.logger.Warn().Err(err).Msg("lowest prices query failed")
		return nil, err
	}

	s.logger.Debug().Int("total_price", resp.TotalPrice).Msg("lowest prices computed")
	return resp, nil
}

// PriceRange reports every brand tied at the minimum and maximum price of
// one category.
func (s *pricingService) PriceRange(ctx context.Context, categoryLabel string) (*model.PriceRangeResponse, error) {
	category, ok := catalog.Parse(categoryLabel)
	if !ok {
		s.logger.Warn().Str("category", categoryLabel).Msg("unknown category label")
		return nil, model.InvalidCategoryError(categoryLabel)
	}

	index := s.store.Index(category)
	minPrice, minBrands, err := index.Minima()
	if err != nil {
		s.logger.Warn().Err(err).Str("category", string(category)).Msg("price range query failed")
		return nil, err
	}
	maxPrice, maxBrands, err := index.Maxima()
	if err != nil {
		return nil, err
	}

	resp := &model.PriceRangeResponse{
		Category:      string(category),
		LowestPrices:  s.brandPrices(minBrands, minPrice),
		HighestPrices: s.brandPrices(maxBrands, maxPrice),
	}

	s.logger.Debug().
		Str("category", string(category)).
		Int("min_price", minPrice).
		Int("max_price", maxPrice).
		Msg("price range computed")
	return resp, nil
}

// CheapestBrand reports the single brand(s) with the lowest total covering
// every requested category.
func (s *pricingService) CheapestBrand(ctx context.Context, req *model.CheapestBrandRequest) ([]model.BrandTotal, error) {
	if len(req.Categories) == 0 {
		return nil, model.NewDomainError(model.ErrCodeInvalidInput, "Categories list cannot be empty")
	}

	categories := make([]catalog.Category, 0, len(req.Categories))
	for _, label := range req.Categories {
		category, ok := catalog.Parse(label)
		if !ok {
			s.logger.Warn().Str("category", label).Msg("unknown category label")
			return nil, model.InvalidCategoryError(label)
		}
		categories = append(categories, category)
	}

	results, err := s.solver.CheapestSingleBrand(categories)
	if err != nil {
		s.logger.Warn().Err(err).Msg("cheapest brand query failed")
		return nil, err
	}

	s.logger.Debug().
		Int("categories", len(categories)).
		Int("results", len(results)).
		Msg("cheapest brand computed")
	return results, nil
}

// brandPrices resolves a tie set of brand ids into named entries sorted by
// brand name.
func (s *pricingService) brandPrices(brandIDs []int64, price int) []model.BrandPrice {
	out := make([]model.BrandPrice, 0, len(brandIDs))
	for _, id := range brandIDs {
		name, ok := s.store.BrandName(id)
		if !ok {
			s.logger.Error().Int64("brand_id", id).Msg("brand id missing from store")
			continue
		}
		out = append(out, model.BrandPrice{Brand: name, Price: price})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Brand < out[j].Brand })
	return out
}
