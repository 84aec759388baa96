package enums

import "fmt"

// StockFilter selects a stock tier for the admin inventory view.
type StockFilter string

const (
	StockFilterAll        StockFilter = "all"
	StockFilterInStock    StockFilter = "in-stock"
	StockFilterLowStock   StockFilter = "low-stock"
	StockFilterOutOfStock StockFilter = "out-of-stock"
)

// LowStockThreshold is the inclusive upper bound of the low-stock tier.
const LowStockThreshold = 10

var validStockFilters = []StockFilter{
	StockFilterAll,
	StockFilterInStock,
	StockFilterLowStock,
	StockFilterOutOfStock,
}

// String implements fmt.Stringer.
func (f StockFilter) String() string {
	return string(f)
}

// IsValid reports whether the value is a known StockFilter.
func (f StockFilter) IsValid() bool {
	for _, candidate := range validStockFilters {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseStockFilter converts raw input into a StockFilter. Empty input
// defaults to the all tier.
func ParseStockFilter(value string) (StockFilter, error) {
	if value == "" {
		return StockFilterAll, nil
	}
	for _, candidate := range validStockFilters {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock filter %q", value)
}

// Matches reports whether a stock level falls in the tier. Callers normalize
// absent stock to zero before calling.
func (f StockFilter) Matches(stock int) bool {
	switch f {
	case StockFilterInStock:
		return stock > LowStockThreshold
	case StockFilterLowStock:
		return stock > 0 && stock <= LowStockThreshold
	case StockFilterOutOfStock:
		return stock == 0
	default:
		return true
	}
}
