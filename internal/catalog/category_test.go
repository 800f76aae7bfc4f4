package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		expected Category
		ok       bool
	}{
		{
			name:     "Exact upper-case label",
			label:    "TOP",
			expected: Top,
			ok:       true,
		},
		{
			name:     "Lower-case label is normalised",
			label:    "sneakers",
			expected: Sneakers,
			ok:       true,
		},
		{
			name:     "Mixed case with surrounding whitespace",
			label:    "  Accessory ",
			expected: Accessory,
			ok:       true,
		},
		{
			name:  "Unknown label",
			label: "SHOES",
			ok:    false,
		},
		{
			name:  "Empty label",
			label: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := Parse(tt.label)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, c)
			}
		})
	}
}

func TestAll_CanonicalOrder(t *testing.T) {
	all := All()
	assert.Equal(t, []Category{Top, Outer, Pants, Sneakers, Bag, Hat, Socks, Accessory}, all)
	assert.Equal(t, Count(), len(all))

	// Every category's rank matches its position.
	for i, c := range all {
		assert.Equal(t, i, Rank(c))
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0] = Socks

	assert.Equal(t, Top, All()[0])
}

func TestRank_UnknownSortsLast(t *testing.T) {
	assert.Equal(t, Count(), Rank(Category("SHOES")))
}
