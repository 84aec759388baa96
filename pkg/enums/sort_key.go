package enums

import "fmt"

// SortKey orders the storefront catalog listing.
type SortKey string

const (
	SortKeyFeatured  SortKey = "featured"
	SortKeyPriceLow  SortKey = "price-low"
	SortKeyPriceHigh SortKey = "price-high"
	SortKeyRating    SortKey = "rating"
)

var validSortKeys = []SortKey{
	SortKeyFeatured,
	SortKeyPriceLow,
	SortKeyPriceHigh,
	SortKeyRating,
}

// String implements fmt.Stringer.
func (k SortKey) String() string {
	return string(k)
}

// IsValid reports whether the value is a known SortKey.
func (k SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == k {
			return true
		}
	}
	return false
}

// ParseSortKey converts raw input into a SortKey. Empty input defaults to
// the featured ordering.
func ParseSortKey(value string) (SortKey, error) {
	if value == "" {
		return SortKeyFeatured, nil
	}
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
