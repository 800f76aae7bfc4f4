package model

// BrandRequest represents the request payload for registering a brand.
type BrandRequest struct {
	Name string `json:"name" validate:"required"`
}

// ProductRequest represents the request payload for registering or
// updating a product price.
type ProductRequest struct {
	Brand    string `json:"brand" validate:"required"`
	Category string `json:"category" validate:"required"`
	Price    int    `json:"price" validate:"required,gt=0"`
}

// CheapestBrandRequest selects the categories a single brand must cover.
type CheapestBrandRequest struct {
	Categories []string `json:"categories" validate:"required,min=1,dive,required"`
}

// BrandPrice is one brand tied at an extremal price.
type BrandPrice struct {
	Brand string `json:"brand"`
	Price int    `json:"price"`
}

// CategoryLowestPrice lists every brand tied at the minimum price of one
// category.
type CategoryLowestPrice struct {
	Category    string       `json:"category"`
	BrandPrices []BrandPrice `json:"brandPrices"`
}

// LowestPricesResponse is the cheapest-outfit payload: the per-category
// minima plus their sum, with each tie counted once.
type LowestPricesResponse struct {
	Categories []CategoryLowestPrice `json:"categories"`
	TotalPrice int                   `json:"totalPrice"`
}

// PriceRangeResponse reports every brand tied at the minimum and maximum
// price of a category.
type PriceRangeResponse struct {
	Category      string       `json:"category"`
	LowestPrices  []BrandPrice `json:"lowestPrices"`
	HighestPrices []BrandPrice `json:"highestPrices"`
}

// CategoryPrice is one category's price within a single brand's outfit.
type CategoryPrice struct {
	Category string `json:"category"`
	Price    int    `json:"price"`
}

// BrandTotal is one brand that covers every requested category from its
// own prices alone.
type BrandTotal struct {
	Brand          string          `json:"brand"`
	Total          int             `json:"total"`
	CategoryPrices []CategoryPrice `json:"categoryPrices"`
}
