package domain

import "fmt"

// Default bounds for filtered skin queries
const (
	DefaultMinPrice = 2.0
	DefaultMaxPrice = 1000.0
)

// SkinFilter describes a filtered skin listing: a price range, a sort order
// on base price, and an optional case-insensitive substring match on name.
type SkinFilter struct {
	MinPrice     float64
	MaxPrice     float64
	Order        string
	NameContains string
}

// DefaultSkinFilter returns a filter with the default price range, ascending
func DefaultSkinFilter() SkinFilter {
	return SkinFilter{
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
		Order:    OrderAsc,
	}
}

// Validate checks the filter's range and order before any remote call is made
func (f SkinFilter) Validate() error {
	if !IsValidOrder(f.Order) {
		return fmt.Errorf("%w: order must be %q or %q, got %q", ErrInvalidArgument, OrderAsc, OrderDesc, f.Order)
	}
	if f.MaxPrice < f.MinPrice {
		return fmt.Errorf("%w: max_price (%g) cannot be less than min_price (%g)", ErrInvalidArgument, f.MaxPrice, f.MinPrice)
	}
	return nil
}

// ValidatePageParams checks list pagination values before any remote call is made
func ValidatePageParams(limit, offset int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be greater than 0", ErrInvalidArgument)
	}
	if offset < 0 {
		return fmt.Errorf("%w: offset cannot be negative", ErrInvalidArgument)
	}
	return nil
}
