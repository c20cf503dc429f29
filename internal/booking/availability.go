package booking

import (
	"time"

	"github.com/stayflow/hotel-booking-backend/internal/room"
)

// SearchCriteria describes a room search. All static filters are optional;
// date availability is only applied when both CheckIn and CheckOut are set.
type SearchCriteria struct {
	HotelID   string
	Guests    int
	MinPrice  *float64
	MaxPrice  *float64
	Amenities []string
	CheckIn   *time.Time
	CheckOut  *time.Time
}

// Interval returns the desired stay range, or false when the criteria carry
// no date constraint.
func (c SearchCriteria) Interval() (Interval, bool) {
	if c.CheckIn == nil || c.CheckOut == nil {
		return Interval{}, false
	}
	return Interval{Start: *c.CheckIn, End: *c.CheckOut}, true
}

// IsRoomAvailable reports whether the room is free for the requested interval
// given the existing bookings. Cancelled bookings never conflict, and bookings
// for other rooms are ignored. Pure function: it does not consult any store.
func IsRoomAvailable(roomID string, iv Interval, existing []*Booking) bool {
	for _, b := range existing {
		if b.RoomID != roomID || b.Status == StatusCancelled {
			continue
		}
		if Overlaps(iv, b.Interval()) {
			return false
		}
	}
	return true
}

// FilterRooms returns the rooms satisfying both the static criteria and, when
// the criteria carry a date range, availability against the existing bookings.
// The result preserves the input order of rooms (stable filter). An empty
// result is a valid value, never an error.
func FilterRooms(rooms []*room.Room, criteria SearchCriteria, existing []*Booking) []*room.Room {
	iv, hasDates := criteria.Interval()

	out := make([]*room.Room, 0, len(rooms))
	for _, r := range rooms {
		if criteria.HotelID != "" && r.HotelID != criteria.HotelID {
			continue
		}
		if criteria.Guests > 0 && r.Capacity < criteria.Guests {
			continue
		}
		if criteria.MinPrice != nil && r.Price < *criteria.MinPrice {
			continue
		}
		if criteria.MaxPrice != nil && r.Price > *criteria.MaxPrice {
			continue
		}
		if !r.HasAnyAmenity(criteria.Amenities) {
			continue
		}
		if hasDates && !IsRoomAvailable(r.ID, iv, existing) {
			continue
		}
		out = append(out, r)
	}
	return out
}
