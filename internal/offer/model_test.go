package offer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestDiscount(t *testing.T) {
	assert.Equal(t, 0, BestDiscount(nil))

	offers := []*Offer{
		{DiscountPercent: 10},
		{DiscountPercent: 25},
		{DiscountPercent: 5},
	}
	assert.Equal(t, 25, BestDiscount(offers))
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		percent int
		want    float64
	}{
		{"no discount", 200, 0, 200},
		{"negative percent is ignored", 200, -10, 200},
		{"quarter off", 200, 25, 150},
		{"full discount", 200, 100, 0},
		{"over 100 clamps to free", 200, 150, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ApplyDiscount(tt.price, tt.percent), 0.0001)
		})
	}
}
