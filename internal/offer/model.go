package offer

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("offer not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidDiscount = errors.New("discount must be between 0 and 100 percent")
)

// Offer is a promotional discount applied to room prices.
type Offer struct {
	ID              string
	Title           string
	Description     string
	DiscountPercent int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Filter defines parameters for listing offers.
type Filter struct {
	ActiveOnly bool
	Page       int
	PageSize   int
}

// BestDiscount returns the highest discount percentage among the offers.
func BestDiscount(offers []*Offer) int {
	best := 0
	for _, o := range offers {
		if o.DiscountPercent > best {
			best = o.DiscountPercent
		}
	}
	return best
}

// ApplyDiscount returns the price reduced by the given percentage.
func ApplyDiscount(price float64, percent int) float64 {
	if percent <= 0 {
		return price
	}
	if percent >= 100 {
		return 0
	}
	return price * (100 - float64(percent)) / 100
}
