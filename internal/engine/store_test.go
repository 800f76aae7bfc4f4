package engine

import (
	"testing"

	"brand-pricing/internal/catalog"
	"brand-pricing/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(zerolog.Nop())
}

func TestStore_RegisterBrand(t *testing.T) {
	tests := []struct {
		name        string
		existing    []string
		register    string
		expectedErr error
	}{
		{
			name:     "New brand succeeds",
			register: "MUJI",
		},
		{
			name:        "Duplicate name fails",
			existing:    []string{"MUJI"},
			register:    "MUJI",
			expectedErr: model.ErrDuplicateBrand,
		},
		{
			name:     "Name matching is case-sensitive",
			existing: []string{"MUJI"},
			register: "muji",
		},
		{
			name:        "Empty name is invalid input",
			register:    "",
			expectedErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			for _, name := range tt.existing {
				_, err := store.RegisterBrand(name)
				require.NoError(t, err)
			}

			brand, err := store.RegisterBrand(tt.register)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.register, brand.Name)
			assert.Positive(t, brand.ID)
		})
	}
}

func TestStore_RegisterBrand_AssignsSequentialIDs(t *testing.T) {
	store := newTestStore(t)

	a, err := store.RegisterBrand("A")
	require.NoError(t, err)
	b, err := store.RegisterBrand("B")
	require.NoError(t, err)

	assert.Equal(t, a.ID+1, b.ID)
	assert.Equal(t, []model.Brand{a, b}, store.ListBrands())
}

func TestStore_UpsertProduct_Validation(t *testing.T) {
	tests := []struct {
		name        string
		brand       string
		category    catalog.Category
		price       int
		expectedErr error
	}{
		{
			name:        "Unknown brand",
			brand:       "NOPE",
			category:    catalog.Top,
			price:       1000,
			expectedErr: model.ErrUnknownBrand,
		},
		{
			name:        "Unknown category",
			brand:       "A",
			category:    catalog.Category("SHOES"),
			price:       1000,
			expectedErr: model.ErrInvalidCategory,
		},
		{
			name:        "Zero price",
			brand:       "A",
			category:    catalog.Top,
			price:       0,
			expectedErr: model.ErrInvalidPrice,
		},
		{
			name:        "Negative price",
			brand:       "A",
			category:    catalog.Top,
			price:       -100,
			expectedErr: model.ErrInvalidPrice,
		},
		{
			name:     "Valid product",
			brand:    "A",
			category: catalog.Top,
			price:    11200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			_, err := store.RegisterBrand("A")
			require.NoError(t, err)

			product, err := store.UpsertProduct(tt.brand, tt.category, tt.price)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.brand, product.Brand)
			assert.Equal(t, tt.category, product.Category)
			assert.Equal(t, tt.price, product.Price)
			assert.Positive(t, product.ID)
		})
	}
}

func TestStore_UpsertProduct_ReplacesInPlace(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RegisterBrand("A")
	require.NoError(t, err)

	created, err := store.UpsertProduct("A", catalog.Top, 11200)
	require.NoError(t, err)

	updated, err := store.UpsertProduct("A", catalog.Top, 9800)
	require.NoError(t, err)

	// Same pair keeps the same product id across price updates.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 9800, updated.Price)

	products := store.ListProducts(model.ProductFilter{})
	require.Len(t, products, 1)
	assert.Equal(t, 9800, products[0].Price)

	price, _, err := store.Index(catalog.Top).Minima()
	require.NoError(t, err)
	assert.Equal(t, 9800, price)
}

func TestStore_UpsertProduct_NormalisesCategoryLabel(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RegisterBrand("A")
	require.NoError(t, err)

	created, err := store.UpsertProduct("A", catalog.Category("top"), 11200)
	require.NoError(t, err)
	assert.Equal(t, catalog.Top, created.Category)

	// The variant label lands in the canonical index and addresses the
	// same pair as the canonical one.
	price, _, err := store.Index(catalog.Top).Minima()
	require.NoError(t, err)
	assert.Equal(t, 11200, price)

	updated, err := store.UpsertProduct("A", catalog.Top, 9800)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
}

func TestStore_DeleteProduct(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RegisterBrand("A")
	require.NoError(t, err)

	product, err := store.UpsertProduct("A", catalog.Bag, 2000)
	require.NoError(t, err)

	require.NoError(t, store.DeleteProduct(product.ID))
	assert.Empty(t, store.ListProducts(model.ProductFilter{}))

	_, _, err = store.Index(catalog.Bag).Minima()
	assert.ErrorIs(t, err, model.ErrEmptyCategory)

	// A second delete of the same id is NotFound.
	assert.ErrorIs(t, store.DeleteProduct(product.ID), model.ErrProductNotFound)
}

func TestStore_UpsertThenDeleteRestoresExtremes(t *testing.T) {
	store := newTestStore(t)
	for _, name := range []string{"A", "B", "C"} {
		_, err := store.RegisterBrand(name)
		require.NoError(t, err)
	}
	_, err := store.UpsertProduct("A", catalog.Socks, 1800)
	require.NoError(t, err)
	_, err = store.UpsertProduct("B", catalog.Socks, 1800)
	require.NoError(t, err)

	minBefore, minBrandsBefore, err := store.Index(catalog.Socks).Minima()
	require.NoError(t, err)
	maxBefore, maxBrandsBefore, err := store.Index(catalog.Socks).Maxima()
	require.NoError(t, err)

	intruder, err := store.UpsertProduct("C", catalog.Socks, 1500)
	require.NoError(t, err)
	require.NoError(t, store.DeleteProduct(intruder.ID))

	// The category is back to its exact prior state, tie sets included.
	minAfter, minBrandsAfter, err := store.Index(catalog.Socks).Minima()
	require.NoError(t, err)
	maxAfter, maxBrandsAfter, err := store.Index(catalog.Socks).Maxima()
	require.NoError(t, err)

	assert.Equal(t, minBefore, minAfter)
	assert.Equal(t, minBrandsBefore, minBrandsAfter)
	assert.Equal(t, maxBefore, maxAfter)
	assert.Equal(t, maxBrandsBefore, maxBrandsAfter)
}

func TestStore_ListProducts_Filtering(t *testing.T) {
	store := newTestStore(t)
	for _, name := range []string{"Nike", "New Balance", "Adidas"} {
		_, err := store.RegisterBrand(name)
		require.NoError(t, err)
	}
	seed := []struct {
		brand    string
		category catalog.Category
		price    int
	}{
		{"Nike", catalog.Sneakers, 9000},
		{"New Balance", catalog.Sneakers, 9100},
		{"Adidas", catalog.Sneakers, 9200},
		{"Nike", catalog.Socks, 1800},
	}
	for _, p := range seed {
		_, err := store.UpsertProduct(p.brand, p.category, p.price)
		require.NoError(t, err)
	}

	tests := []struct {
		name     string
		filter   model.ProductFilter
		expected []string
	}{
		{
			name:     "No filter returns everything",
			filter:   model.ProductFilter{},
			expected: []string{"Nike", "New Balance", "Adidas", "Nike"},
		},
		{
			name:     "Brand substring is case-insensitive",
			filter:   model.ProductFilter{BrandSubstring: "ne"},
			expected: []string{"Nike", "New Balance", "Nike"},
		},
		{
			name:     "Category filter is exact",
			filter:   model.ProductFilter{Category: catalog.Socks},
			expected: []string{"Nike"},
		},
		{
			name:     "Combined filters",
			filter:   model.ProductFilter{BrandSubstring: "balance", Category: catalog.Sneakers},
			expected: []string{"New Balance"},
		},
		{
			name:     "No match",
			filter:   model.ProductFilter{BrandSubstring: "puma"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products := store.ListProducts(tt.filter)
			names := make([]string, 0, len(products))
			for _, p := range products {
				names = append(names, p.Brand)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestStore_ListProducts_StableOrder(t *testing.T) {
	store := newTestStore(t)
	_, err := store.RegisterBrand("A")
	require.NoError(t, err)

	first, err := store.UpsertProduct("A", catalog.Top, 11200)
	require.NoError(t, err)
	second, err := store.UpsertProduct("A", catalog.Outer, 5500)
	require.NoError(t, err)

	products := store.ListProducts(model.ProductFilter{})
	require.Len(t, products, 2)
	assert.Equal(t, first.ID, products[0].ID)
	assert.Equal(t, second.ID, products[1].ID)
}

func TestStore_Load(t *testing.T) {
	brands := []model.Brand{{ID: 3, Name: "A"}, {ID: 5, Name: "B"}}
	products := []model.ProductRecord{
		{ID: 10, BrandID: 3, Category: catalog.Top, Price: 11200},
		{ID: 11, BrandID: 5, Category: catalog.Top, Price: 10500},
	}

	store := newTestStore(t)
	require.NoError(t, store.Load(brands, products))

	price, _, err := store.Index(catalog.Top).Minima()
	require.NoError(t, err)
	assert.Equal(t, 10500, price)

	// Counters continue past the restored ids.
	brand, err := store.RegisterBrand("C")
	require.NoError(t, err)
	assert.Equal(t, int64(6), brand.ID)

	product, err := store.UpsertProduct("C", catalog.Top, 9900)
	require.NoError(t, err)
	assert.Equal(t, int64(12), product.ID)
}

func TestStore_Load_NormalisesCategoryLabel(t *testing.T) {
	// Foreign-seeded rows may carry case-variant labels.
	brands := []model.Brand{{ID: 1, Name: "A"}}
	products := []model.ProductRecord{
		{ID: 1, BrandID: 1, Category: catalog.Category("top"), Price: 11200},
	}

	store := newTestStore(t)
	require.NoError(t, store.Load(brands, products))

	price, _, err := store.Index(catalog.Top).Minima()
	require.NoError(t, err)
	assert.Equal(t, 11200, price)

	listed := store.ListProducts(model.ProductFilter{Category: catalog.Top})
	require.Len(t, listed, 1)
	assert.Equal(t, catalog.Top, listed[0].Category)
}

func TestStore_Load_RejectsCorruptState(t *testing.T) {
	brands := []model.Brand{{ID: 1, Name: "A"}}

	tests := []struct {
		name     string
		products []model.ProductRecord
	}{
		{
			name:     "Unknown brand reference",
			products: []model.ProductRecord{{ID: 1, BrandID: 9, Category: catalog.Top, Price: 100}},
		},
		{
			name:     "Unknown category",
			products: []model.ProductRecord{{ID: 1, BrandID: 1, Category: "SHOES", Price: 100}},
		},
		{
			name:     "Non-positive price",
			products: []model.ProductRecord{{ID: 1, BrandID: 1, Category: catalog.Top, Price: 0}},
		},
		{
			name: "Duplicate pair",
			products: []model.ProductRecord{
				{ID: 1, BrandID: 1, Category: catalog.Top, Price: 100},
				{ID: 2, BrandID: 1, Category: catalog.Top, Price: 200},
			},
		},
		{
			name: "Duplicate pair under case-variant labels",
			products: []model.ProductRecord{
				{ID: 1, BrandID: 1, Category: catalog.Top, Price: 100},
				{ID: 2, BrandID: 1, Category: catalog.Category("top"), Price: 200},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			assert.Error(t, store.Load(brands, tt.products))
		})
	}
}
