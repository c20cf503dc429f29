package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 6, d, 0, 0, 0, 0, time.UTC)
}

func TestIntervalValidate(t *testing.T) {
	tests := []struct {
		name    string
		iv      Interval
		wantErr error
	}{
		{
			name: "valid range",
			iv:   Interval{Start: day(1), End: day(5)},
		},
		{
			name:    "start equals end",
			iv:      Interval{Start: day(1), End: day(1)},
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "start after end",
			iv:      Interval{Start: day(5), End: day(1)},
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "zero interval",
			iv:      Interval{},
			wantErr: ErrInvalidInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.iv.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals",
			a:    Interval{Start: day(1), End: day(5)},
			b:    Interval{Start: day(1), End: day(5)},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Interval{Start: day(1), End: day(5)},
			b:    Interval{Start: day(3), End: day(8)},
			want: true,
		},
		{
			name: "nested interval",
			a:    Interval{Start: day(1), End: day(10)},
			b:    Interval{Start: day(3), End: day(5)},
			want: true,
		},
		{
			name: "touching endpoints do not overlap",
			a:    Interval{Start: day(1), End: day(5)},
			b:    Interval{Start: day(5), End: day(8)},
			want: false,
		},
		{
			name: "disjoint intervals",
			a:    Interval{Start: day(1), End: day(3)},
			b:    Interval{Start: day(10), End: day(12)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			// Overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusPending, StatusPending, false},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
