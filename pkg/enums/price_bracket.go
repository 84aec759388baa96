package enums

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PriceBracket selects a price range for the admin inventory view. The four
// non-all brackets partition [0, inf) without gaps or overlaps: 50 belongs to
// the 50-100 bracket, 100 to 50-100, 500 to 100-500.
type PriceBracket string

const (
	PriceBracketAll      PriceBracket = "all"
	PriceBracketUnder50  PriceBracket = "under-50"
	PriceBracket50To100  PriceBracket = "50-100"
	PriceBracket100To500 PriceBracket = "100-500"
	PriceBracketOver500  PriceBracket = "over-500"
)

var validPriceBrackets = []PriceBracket{
	PriceBracketAll,
	PriceBracketUnder50,
	PriceBracket50To100,
	PriceBracket100To500,
	PriceBracketOver500,
}

var (
	priceBound50  = decimal.NewFromInt(50)
	priceBound100 = decimal.NewFromInt(100)
	priceBound500 = decimal.NewFromInt(500)
)

// String implements fmt.Stringer.
func (b PriceBracket) String() string {
	return string(b)
}

// IsValid reports whether the value is a known PriceBracket.
func (b PriceBracket) IsValid() bool {
	for _, candidate := range validPriceBrackets {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParsePriceBracket converts raw input into a PriceBracket. Empty input
// defaults to the all bracket.
func ParsePriceBracket(value string) (PriceBracket, error) {
	if value == "" {
		return PriceBracketAll, nil
	}
	for _, candidate := range validPriceBrackets {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid price bracket %q", value)
}

// Matches reports whether a price falls in the bracket. Callers normalize
// absent prices to zero before calling.
func (b PriceBracket) Matches(price decimal.Decimal) bool {
	switch b {
	case PriceBracketUnder50:
		return price.LessThan(priceBound50)
	case PriceBracket50To100:
		return price.GreaterThanOrEqual(priceBound50) && price.LessThanOrEqual(priceBound100)
	case PriceBracket100To500:
		return price.GreaterThan(priceBound100) && price.LessThanOrEqual(priceBound500)
	case PriceBracketOver500:
		return price.GreaterThan(priceBound500)
	default:
		return true
	}
}
