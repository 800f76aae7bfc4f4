package engine

import (
	"fmt"

	"brand-pricing/internal/catalog"
)

// demoMatrix is the reference price matrix used for local development and
// demos. Prices are listed in canonical category order.
var demoMatrix = []struct {
	brand  string
	prices [8]int
}{
	{"A", [8]int{11200, 5500, 4200, 9000, 2000, 1700, 1800, 2300}},
	{"B", [8]int{10500, 5900, 3800, 9100, 2100, 2000, 2000, 2200}},
	{"C", [8]int{10000, 6200, 3300, 9200, 2200, 1900, 2200, 2100}},
	{"D", [8]int{10100, 5100, 3000, 9500, 2500, 1500, 2400, 2000}},
	{"E", [8]int{10700, 5000, 3800, 9900, 2300, 1800, 2100, 2100}},
	{"F", [8]int{11200, 7200, 4000, 9300, 2100, 1600, 2300, 1900}},
	{"G", [8]int{10500, 5800, 3900, 9000, 2200, 1700, 2100, 2000}},
	{"H", [8]int{10800, 6300, 3100, 9700, 2100, 1600, 2000, 2000}},
	{"I", [8]int{11400, 6700, 3200, 9500, 2400, 1700, 1700, 2400}},
}

// SeedDemoData fills the store with the demo brands A through I, one price
// per brand per category. It refuses to seed a non-empty store.
func SeedDemoData(store *Store) error {
	if len(store.ListBrands()) > 0 {
		return fmt.Errorf("refusing to seed a non-empty store")
	}

	categories := catalog.All()
	for _, row := range demoMatrix {
		if _, err := store.RegisterBrand(row.brand); err != nil {
			return fmt.Errorf("failed to seed brand %s: %w", row.brand, err)
		}
		for i, c := range categories {
			if _, err := store.UpsertProduct(row.brand, c, row.prices[i]); err != nil {
				return fmt.Errorf("failed to seed %s/%s: %w", row.brand, c, err)
			}
		}
	}

	return nil
}
