package model

import "brand-pricing/internal/catalog"

// Brand represents a registered brand. Names are unique and immutable
// once registered.
type Brand struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Product is one live price for a (brand, category) pair. A brand carries
// at most one price per category; re-registering the pair replaces the
// price but keeps the id.
type Product struct {
	ID       int64            `json:"id" db:"id"`
	Brand    string           `json:"brand"`
	Category catalog.Category `json:"category" db:"category"`
	Price    int              `json:"price" db:"price"`
}

// ProductRecord is the storage-level shape of a product, keyed by brand id
// rather than brand name.
type ProductRecord struct {
	ID       int64            `db:"id"`
	BrandID  int64            `db:"brand_id"`
	Category catalog.Category `db:"category"`
	Price    int              `db:"price"`
}

// ProductFilter narrows ListProducts results. Zero values match everything.
type ProductFilter struct {
	// BrandSubstring is matched case-insensitively against brand names.
	BrandSubstring string
	// Category, when set, must match exactly.
	Category catalog.Category
}
