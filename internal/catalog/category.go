// Package catalog defines the fixed set of product categories and the
// canonical ordering used across query responses.
package catalog

import "strings"

// Category is one label from the fixed catalogue of clothing-item types.
type Category string

// The full catalogue, in canonical order.
const (
	Top       Category = "TOP"
	Outer     Category = "OUTER"
	Pants     Category = "PANTS"
	Sneakers  Category = "SNEAKERS"
	Bag       Category = "BAG"
	Hat       Category = "HAT"
	Socks     Category = "SOCKS"
	Accessory Category = "ACCESSORY"
)

var ordered = []Category{Top, Outer, Pants, Sneakers, Bag, Hat, Socks, Accessory}

var rankByCategory = func() map[Category]int {
	m := make(map[Category]int, len(ordered))
	for i, c := range ordered {
		m[c] = i
	}
	return m
}()

// All returns every category in canonical order. The returned slice is a
// copy and safe for callers to reorder.
func All() []Category {
	out := make([]Category, len(ordered))
	copy(out, ordered)
	return out
}

// Count returns the number of categories in the catalogue.
func Count() int {
	return len(ordered)
}

// Parse resolves a caller-supplied label against the catalogue. Labels are
// matched case-insensitively; the second return value reports whether the
// label is part of the catalogue.
func Parse(label string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(label)))
	if _, ok := rankByCategory[c]; !ok {
		return "", false
	}
	return c, true
}

// Rank returns the canonical position of a category, used for sorting
// response payloads. Unknown categories sort last.
func Rank(c Category) int {
	if r, ok := rankByCategory[c]; ok {
		return r
	}
	return len(ordered)
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}
