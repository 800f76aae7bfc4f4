package engine

import (
	"sort"

	"brand-pricing/internal/catalog"
	"brand-pricing/internal/model"

	"github.com/rs/zerolog"
)

// Solver answers the two outfit queries over the store: the cheapest
// total when each category picks its minimum brand independently, and the
// cheapest single brand that covers a whole category set by itself.
//
// Cross-category reads are snapshot queries: each category is read under
// its own lock and is internally consistent, with no global lock held
// across categories.
type Solver struct {
	store  *Store
	logger zerolog.Logger
}

// NewSolver creates a solver over the given store.
func NewSolver(store *Store, logger zerolog.Logger) *Solver {
	return &Solver{
		store:  store,
		logger: logger.With().Str("component", "solver").Logger(),
	}
}

// CheapestPerCategoryTotal reports, for each requested category, the
// minimum price with every brand tied at it, plus the sum of the minima.
// Categories are independent; a tie contributes its price once. Any empty
// requested category fails the whole query so the caller never sees an
// incomplete total.
func (s *Solver) CheapestPerCategoryTotal(categories []catalog.Category) (*model.LowestPricesResponse, error) {
	ordered := sortCanonical(categories)

	resp := &model.LowestPricesResponse{
		Categories: make([]model.CategoryLowestPrice, 0, len(ordered)),
	}
	for _, c := range ordered {
		price, brandIDs, err := s.store.Index(c).Minima()
		if err != nil {
			return nil, err
		}
		resp.Categories = append(resp.Categories, model.CategoryLowestPrice{
			Category:    string(c),
			BrandPrices: s.brandPrices(brandIDs, price),
		})
		resp.TotalPrice += price
	}
	return resp, nil
}

// brandAccumulator tracks one brand's coverage of the requested set.
type brandAccumulator struct {
	covered int
	total   int
	prices  map[catalog.Category]int
}

// CheapestSingleBrand returns every brand tied at the minimum total among
// brands that carry a live price in all requested categories. The result
// is empty, not an error, when no brand covers the whole set. The
// requested set must be non-empty.
//
// Each requested category's product list is scanned once, accumulating
// per-brand coverage and partial sums, so the cost is proportional to the
// number of products in the requested categories.
func (s *Solver) CheapestSingleBrand(categories []catalog.Category) ([]model.BrandTotal, error) {
	if len(categories) == 0 {
		return nil, model.NewDomainError(model.ErrCodeInvalidInput, "Categories list cannot be empty")
	}
	ordered := sortCanonical(categories)

	accs := make(map[int64]*brandAccumulator)
	for _, c := range ordered {
		for brandID, price := range s.store.CategoryPrices(c) {
			acc, ok := accs[brandID]
			if !ok {
				acc = &brandAccumulator{prices: make(map[catalog.Category]int, len(ordered))}
				accs[brandID] = acc
			}
			acc.covered++
			acc.total += price
			acc.prices[c] = price
		}
	}

	minTotal := 0
	found := false
	for _, acc := range accs {
		if acc.covered != len(ordered) {
			continue
		}
		if !found || acc.total < minTotal {
			minTotal = acc.total
			found = true
		}
	}
	if !found {
		s.logger.Debug().Int("categories", len(ordered)).Msg("no brand covers all requested categories")
		return []model.BrandTotal{}, nil
	}

	results := make([]model.BrandTotal, 0, 1)
	for brandID, acc := range accs {
		if acc.covered != len(ordered) || acc.total != minTotal {
			continue
		}
		name, ok := s.store.BrandName(brandID)
		if !ok {
			// The accumulator was built from live products, so the brand
			// must still resolve unless the index drifted from the store.
			s.logger.Error().Int64("brand_id", brandID).Msg("brand id missing from store")
			continue
		}
		categoryPrices := make([]model.CategoryPrice, 0, len(ordered))
		for _, c := range ordered {
			categoryPrices = append(categoryPrices, model.CategoryPrice{
				Category: string(c),
				Price:    acc.prices[c],
			})
		}
		results = append(results, model.BrandTotal{
			Brand:          name,
			Total:          acc.total,
			CategoryPrices: categoryPrices,
		})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Brand < results[j].Brand })
	return results, nil
}

// brandPrices resolves brand ids to names and orders the tie set by name.
func (s *Solver) brandPrices(brandIDs []int64, price int) []model.BrandPrice {
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

// sortCanonical deduplicates the requested categories and orders them by
// catalogue rank.
func sortCanonical(categories []catalog.Category) []catalog.Category {
	seen := make(map[catalog.Category]struct{}, len(categories))
	out := make([]catalog.Category, 0, len(categories))
	for _, c := range categories {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return catalog.Rank(out[i]) < catalog.Rank(out[j]) })
	return out
}
