// Package engine implements the in-memory price aggregation core: the
// authoritative (brand, category) price matrix, the per-category extremes
// indexes derived from it, and the outfit solver that answers the
// cheapest-price queries.
package engine

import (
	"sort"
	"sync"

	"brand-pricing/internal/catalog"
	"brand-pricing/internal/model"
)

// CategoryIndex maintains the live (price, brand) pairs of one category so
// minimum and maximum price lookups never rescan the whole category.
//
// Each index carries its own lock: writes to different categories never
// contend, and a reader observes a mutation either fully applied or not at
// all.
type CategoryIndex struct {
	category catalog.Category

	mu sync.RWMutex
	// prices holds every distinct live price, ascending.
	prices []int
	// brandsByPrice maps a live price to the brands currently at it.
	brandsByPrice map[int]map[int64]struct{}
}

// NewCategoryIndex creates an empty index for one category.
func NewCategoryIndex(category catalog.Category) *CategoryIndex {
	return &CategoryIndex{
		category:      category,
		brandsByPrice: make(map[int]map[int64]struct{}),
	}
}

// Upsert moves a brand's index entry from oldPrice to newPrice as one
// atomic step. A nil oldPrice means the brand had no entry yet.
func (ix *CategoryIndex) Upsert(brandID int64, oldPrice *int, newPrice int) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if oldPrice != nil {
		ix.removeLocked(brandID, *oldPrice)
	}
	ix.insertLocked(brandID, newPrice)
}

// Remove drops a brand's entry at the given price.
func (ix *CategoryIndex) Remove(brandID int64, price int) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	ix.removeLocked(brandID, price)
}

// Minima returns the lowest live price and every brand tied at it.
// An empty category is an error, never a stale or default extreme.
func (ix *CategoryIndex) Minima() (int, []int64, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if len(ix.prices) == 0 {
		return 0, nil, model.EmptyCategoryError(string(ix.category))
	}
	return ix.extremeLocked(ix.prices[0])
}

// Maxima returns the highest live price and every brand tied at it.
func (ix *CategoryIndex) Maxima() (int, []int64, error) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	if len(ix.prices) == 0 {
		return 0, nil, model.EmptyCategoryError(string(ix.category))
	}
	return ix.extremeLocked(ix.prices[len(ix.prices)-1])
}

// Len returns the number of live entries.
func (ix *CategoryIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	n := 0
	for _, brands := range ix.brandsByPrice {
		n += len(brands)
	}
	return n
}

func (ix *CategoryIndex) extremeLocked(price int) (int, []int64, error) {
	brands := make([]int64, 0, len(ix.brandsByPrice[price]))
	for id := range ix.brandsByPrice[price] {
		brands = append(brands, id)
	}
	sort.Slice(brands, func(i, j int) bool { return brands[i] < brands[j] })
	return price, brands, nil
}

func (ix *CategoryIndex) insertLocked(brandID int64, price int) {
	brands, ok := ix.brandsByPrice[price]
	if !ok {
		brands = make(map[int64]struct{})
		ix.brandsByPrice[price] = brands

		pos := sort.SearchInts(ix.prices, price)
		ix.prices = append(ix.prices, 0)
		copy(ix.prices[pos+1:], ix.prices[pos:])
		ix.prices[pos] = price
	}
	brands[brandID] = struct{}{}
}

func (ix *CategoryIndex) removeLocked(brandID int64, price int) {
	brands, ok := ix.brandsByPrice[price]
	if !ok {
		return
	}
	delete(brands, brandID)
	if len(brands) > 0 {
		return
	}

	delete(ix.brandsByPrice, price)
	pos := sort.SearchInts(ix.prices, price)
	if pos < len(ix.prices) && ix.prices[pos] == price {
		ix.prices = append(ix.prices[:pos], ix.prices[pos+1:]...)
	}
}
