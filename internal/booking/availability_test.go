package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stayflow/hotel-booking-backend/internal/room"
)

func TestIsRoomAvailable(t *testing.T) {
	iv := Interval{Start: day(3), End: day(6)}

	tests := []struct {
		name     string
		existing []*Booking
		want     bool
	}{
		{
			name:     "no bookings at all",
			existing: nil,
			want:     true,
		},
		{
			name: "overlapping confirmed booking blocks",
			existing: []*Booking{
				{RoomID: "room-1", CheckIn: day(4), CheckOut: day(8), Status: StatusConfirmed},
			},
			want: false,
		},
		{
			name: "overlapping pending booking blocks",
			existing: []*Booking{
				{RoomID: "room-1", CheckIn: day(1), CheckOut: day(4), Status: StatusPending},
			},
			want: false,
		},
		{
			name: "cancelled booking is ignored",
			existing: []*Booking{
				{RoomID: "room-1", CheckIn: day(3), CheckOut: day(6), Status: StatusCancelled},
			},
			want: true,
		},
		{
			name: "booking for another room is ignored",
			existing: []*Booking{
				{RoomID: "room-2", CheckIn: day(3), CheckOut: day(6), Status: StatusConfirmed},
			},
			want: true,
		},
		{
			name: "back to back checkout and checkin",
			existing: []*Booking{
				{RoomID: "room-1", CheckIn: day(1), CheckOut: day(3), Status: StatusConfirmed},
				{RoomID: "room-1", CheckIn: day(6), CheckOut: day(9), Status: StatusConfirmed},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRoomAvailable("room-1", iv, tt.existing))
		})
	}
}

func TestFilterRooms(t *testing.T) {
	fptr := func(v float64) *float64 { return &v }
	tptr := func(ts time.Time) *time.Time { return &ts }

	rooms := []*room.Room{
		{ID: "r1", HotelID: "h1", Capacity: 2, Price: 80, Amenities: []string{"wifi"}},
		{ID: "r2", HotelID: "h1", Capacity: 4, Price: 150, Amenities: []string{"wifi", "minibar"}},
		{ID: "r3", HotelID: "h2", Capacity: 2, Price: 60, Amenities: []string{"balcony"}},
		{ID: "r4", HotelID: "h1", Capacity: 6, Price: 300, Amenities: nil},
	}

	existing := []*Booking{
		{RoomID: "r2", CheckIn: day(1), CheckOut: day(5), Status: StatusConfirmed},
		{RoomID: "r1", CheckIn: day(1), CheckOut: day(5), Status: StatusCancelled},
	}

	ids := func(rs []*room.Room) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.ID
		}
		return out
	}

	tests := []struct {
		name     string
		criteria SearchCriteria
		want     []string
	}{
		{
			name:     "no criteria returns everything in order",
			criteria: SearchCriteria{},
			want:     []string{"r1", "r2", "r3", "r4"},
		},
		{
			name:     "hotel filter",
			criteria: SearchCriteria{HotelID: "h2"},
			want:     []string{"r3"},
		},
		{
			name:     "capacity filter",
			criteria: SearchCriteria{Guests: 4},
			want:     []string{"r2", "r4"},
		},
		{
			name:     "price band",
			criteria: SearchCriteria{MinPrice: fptr(70), MaxPrice: fptr(200)},
			want:     []string{"r1", "r2"},
		},
		{
			name:     "amenity any-match",
			criteria: SearchCriteria{Amenities: []string{"minibar", "balcony"}},
			want:     []string{"r2", "r3"},
		},
		{
			name: "date range excludes conflicting room, cancelled ignored",
			criteria: SearchCriteria{
				CheckIn:  tptr(day(2)),
				CheckOut: tptr(day(4)),
			},
			want: []string{"r1", "r3", "r4"},
		},
		{
			name: "touching stay does not conflict",
			criteria: SearchCriteria{
				CheckIn:  tptr(day(5)),
				CheckOut: tptr(day(9)),
			},
			want: []string{"r1", "r2", "r3", "r4"},
		},
		{
			name: "combined filters",
			criteria: SearchCriteria{
				HotelID:  "h1",
				Guests:   2,
				MaxPrice: fptr(200),
				CheckIn:  tptr(day(2)),
				CheckOut: tptr(day(4)),
			},
			want: []string{"r1"},
		},
		{
			name:     "no matches yields empty slice",
			criteria: SearchCriteria{Guests: 10},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRooms(rooms, tt.criteria, existing)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilterRoomsEmptyInput(t *testing.T) {
	got := FilterRooms(nil, SearchCriteria{}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
