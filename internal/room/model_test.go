package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasAnyAmenity(t *testing.T) {
	r := &Room{Amenities: []string{"wifi", "minibar"}}

	tests := []struct {
		name string
		want []string
		ok   bool
	}{
		{"empty want matches all", nil, true},
		{"single match", []string{"wifi"}, true},
		{"any-match semantics", []string{"balcony", "minibar"}, true},
		{"no match", []string{"balcony", "jacuzzi"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ok, r.HasAnyAmenity(tt.want))
		})
	}

	bare := &Room{}
	assert.True(t, bare.HasAnyAmenity(nil))
	assert.False(t, bare.HasAnyAmenity([]string{"wifi"}))
}

func TestOperationalStatusValid(t *testing.T) {
	assert.True(t, StatusAvailable.Valid())
	assert.True(t, StatusOccupied.Valid())
	assert.True(t, StatusMaintenance.Valid())
	assert.False(t, OperationalStatus("demolished").Valid())
}
