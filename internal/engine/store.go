package engine

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"brand-pricing/internal/catalog"
	"brand-pricing/internal/model"

	"github.com/rs/zerolog"
)

type productKey struct {
	brandID  int64
	category catalog.Category
}

type productEntry struct {
	id    int64
	price int
}

// Store is the single source of truth for the (brand, category) price
// matrix. Every mutation passes through it and keeps the per-category
// indexes in step, so index state is always derived, never edited by
// callers.
type Store struct {
	logger zerolog.Logger

	mu             sync.RWMutex
	brandIDsByName map[string]int64
	brandNamesByID map[int64]string
	products       map[productKey]productEntry
	keysByID       map[int64]productKey
	// pricesByCategory mirrors the live matrix per category (brand id ->
	// price) so the solver can stream a category's products in one pass.
	pricesByCategory map[catalog.Category]map[int64]int
	indexes          map[catalog.Category]*CategoryIndex
	nextBrandID      int64
	nextProductID    int64
}

// NewStore creates an empty store with one index per catalogue category.
func NewStore(logger zerolog.Logger) *Store {
	indexes := make(map[catalog.Category]*CategoryIndex, catalog.Count())
	prices := make(map[catalog.Category]map[int64]int, catalog.Count())
	for _, c := range catalog.All() {
		indexes[c] = NewCategoryIndex(c)
		prices[c] = make(map[int64]int)
	}
	return &Store{
		logger:           logger.With().Str("component", "store").Logger(),
		brandIDsByName:   make(map[string]int64),
		brandNamesByID:   make(map[int64]string),
		products:         make(map[productKey]productEntry),
		keysByID:         make(map[int64]productKey),
		pricesByCategory: prices,
		indexes:          indexes,
	}
}

// RegisterBrand registers a new brand name. Names are matched exactly and
// case-sensitively; a collision fails with ErrDuplicateBrand.
func (s *Store) RegisterBrand(name string) (model.Brand, error) {
	if name == "" {
		return model.Brand{}, model.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.brandIDsByName[name]; exists {
		return model.Brand{}, model.ErrDuplicateBrand
	}

	s.nextBrandID++
	brand := model.Brand{ID: s.nextBrandID, Name: name}
	s.brandIDsByName[name] = brand.ID
	s.brandNamesByID[brand.ID] = name

	s.logger.Debug().Int64("brand_id", brand.ID).Str("brand", name).Msg("brand registered")
	return brand, nil
}

// ListBrands returns every registered brand ordered by id.
func (s *Store) ListBrands() []model.Brand {
	s.mu.RLock()
	defer s.mu.RUnlock()

	brands := make([]model.Brand, 0, len(s.brandNamesByID))
	for id, name := range s.brandNamesByID {
		brands = append(brands, model.Brand{ID: id, Name: name})
	}
	sort.Slice(brands, func(i, j int) bool { return brands[i].ID < brands[j].ID })
	return brands
}

// BrandByName resolves a registered brand by exact name.
func (s *Store) BrandByName(name string) (model.Brand, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.brandIDsByName[name]
	if !ok {
		return model.Brand{}, false
	}
	return model.Brand{ID: id, Name: name}, true
}

// BrandName resolves a brand id to its registered name.
func (s *Store) BrandName(id int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name, ok := s.brandNamesByID[id]
	return name, ok
}

// UpsertProduct registers a price for (brand, category), replacing any
// prior price for the pair in place. The product id is assigned on first
// registration and survives price updates. The affected category index is
// updated in the same critical section, so concurrent readers of that
// category observe the old price or the new one, never neither.
func (s *Store) UpsertProduct(brandName string, category catalog.Category, price int) (model.Product, error) {
	if price <= 0 {
		return model.Product{}, model.ErrInvalidPrice
	}
	// Adopt the canonical label: a case-variant category must never reach
	// the canonical-keyed maps below.
	parsed, ok := catalog.Parse(string(category))
	if !ok {
		return model.Product{}, model.InvalidCategoryError(string(category))
	}
	category = parsed

	s.mu.Lock()
	defer s.mu.Unlock()

	brandID, ok := s.brandIDsByName[brandName]
	if !ok {
		return model.Product{}, model.ErrUnknownBrand
	}

	key := productKey{brandID: brandID, category: category}
	entry, exists := s.products[key]

	var oldPrice *int
	if exists {
		prev := entry.price
		oldPrice = &prev
		entry.price = price
	} else {
		s.nextProductID++
		entry = productEntry{id: s.nextProductID, price: price}
		s.keysByID[entry.id] = key
	}
	s.products[key] = entry
	s.pricesByCategory[category][brandID] = price
	s.indexes[category].Upsert(brandID, oldPrice, price)

	s.logger.Debug().
		Int64("product_id", entry.id).
		Str("brand", brandName).
		Str("category", string(category)).
		Int("price", price).
		Bool("updated", exists).
		Msg("product upserted")

	return model.Product{ID: entry.id, Brand: brandName, Category: category, Price: price}, nil
}

// DeleteProduct removes a live product by id, together with its index
// entry for the affected category.
func (s *Store) DeleteProduct(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.keysByID[id]
	if !ok {
		return model.ErrProductNotFound
	}
	entry := s.products[key]

	delete(s.keysByID, id)
	delete(s.products, key)
	delete(s.pricesByCategory[key.category], key.brandID)
	s.indexes[key.category].Remove(key.brandID, entry.price)

	s.logger.Debug().
		Int64("product_id", id).
		Str("category", string(key.category)).
		Msg("product deleted")
	return nil
}

// ListProducts returns the live products matching the filter, ordered by
// product id. Brand filtering is a case-insensitive substring match;
// category filtering is exact.
func (s *Store) ListProducts(filter model.ProductFilter) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(filter.BrandSubstring)

	products := make([]model.Product, 0, len(s.products))
	for key, entry := range s.products {
		if filter.Category != "" && key.category != filter.Category {
			continue
		}
		name := s.brandNamesByID[key.brandID]
		if needle != "" && !strings.Contains(strings.ToLower(name), needle) {
			continue
		}
		products = append(products, model.Product{
			ID:       entry.id,
			Brand:    name,
			Category: key.category,
			Price:    entry.price,
		})
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}

// CategoryPrices returns a copy of one category's live brand -> price map.
func (s *Store) CategoryPrices(category catalog.Category) map[int64]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	src := s.pricesByCategory[category]
	out := make(map[int64]int, len(src))
	for brandID, price := range src {
		out[brandID] = price
	}
	return out
}

// Index returns the extremes index of one category.
func (s *Store) Index(category catalog.Category) *CategoryIndex {
	return s.indexes[category]
}

// Load replaces the store contents with previously persisted state and
// advances the id counters past the restored ids. Records that violate
// the matrix invariants indicate persistence corruption and fail the load.
func (s *Store) Load(brands []model.Brand, products []model.ProductRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range brands {
		if b.Name == "" {
			return fmt.Errorf("load: brand %d has an empty name", b.ID)
		}
		if _, exists := s.brandIDsByName[b.Name]; exists {
			return fmt.Errorf("load: duplicate brand name %q", b.Name)
		}
		s.brandIDsByName[b.Name] = b.ID
		s.brandNamesByID[b.ID] = b.Name
		if b.ID > s.nextBrandID {
			s.nextBrandID = b.ID
		}
	}

	for _, p := range products {
		if _, ok := s.brandNamesByID[p.BrandID]; !ok {
			return fmt.Errorf("load: product %d references unknown brand %d", p.ID, p.BrandID)
		}
		// Foreign-seeded rows may carry case-variant labels; adopt the
		// canonical one so every map below is keyed consistently.
		category, ok := catalog.Parse(string(p.Category))
		if !ok {
			return fmt.Errorf("load: product %d has unknown category %q", p.ID, p.Category)
		}
		if p.Price <= 0 {
			return fmt.Errorf("load: product %d has non-positive price %d", p.ID, p.Price)
		}
		key := productKey{brandID: p.BrandID, category: category}
		if _, exists := s.products[key]; exists {
			return fmt.Errorf("load: duplicate product for brand %d category %s", p.BrandID, category)
		}
		s.products[key] = productEntry{id: p.ID, price: p.Price}
		s.keysByID[p.ID] = key
		s.pricesByCategory[category][p.BrandID] = p.Price
		s.indexes[category].Upsert(p.BrandID, nil, p.Price)
		if p.ID > s.nextProductID {
			s.nextProductID = p.ID
		}
	}

	s.logger.Info().
		Int("brands", len(brands)).
		Int("products", len(products)).
		Msg("store loaded from persisted state")
	return nil
}
