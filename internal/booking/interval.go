package booking

import "time"

// Interval is a half-open stay range [Start, End): the guest holds the room
// from check-in (inclusive) up to check-out (exclusive). Checkout and check-in
// on the same instant are therefore compatible.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Validate reports whether the interval is well formed (Start strictly before End).
func (iv Interval) Validate() error {
	if !iv.Start.Before(iv.End) {
		return ErrInvalidInterval
	}
	return nil
}

// Overlaps reports whether two half-open intervals share any instant.
// Touching intervals (a.End == b.Start) do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
