package room

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("room not found")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidHotel    = errors.New("invalid hotel_id")
	ErrInvalidCapacity = errors.New("capacity must be at least 1")
	ErrInvalidPrice    = errors.New("price must be non-negative")
	ErrInvalidStatus   = errors.New("invalid room status")
)

// OperationalStatus describes whether a room is in service. It is independent
// of booking-derived availability: an available room can still be booked out
// for a given date range.
type OperationalStatus string

const (
	StatusAvailable   OperationalStatus = "available"
	StatusOccupied    OperationalStatus = "occupied"
	StatusMaintenance OperationalStatus = "maintenance"
)

// Valid reports whether s is a known operational status.
func (s OperationalStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusMaintenance:
		return true
	}
	return false
}

// Room represents a bookable hotel room.
type Room struct {
	ID          string
	HotelID     string
	Name        string
	FloorNumber int
	Capacity    int
	Price       float64
	Amenities   []string
	Status      OperationalStatus
	ImageURL    *string
	CreatedAt   time.Time
}

// HasAnyAmenity reports whether the room offers at least one of the wanted
// amenities. An empty want list matches every room.
func (r *Room) HasAnyAmenity(want []string) bool {
	if len(want) == 0 {
		return true
	}
	for _, w := range want {
		for _, a := range r.Amenities {
			if a == w {
				return true
			}
		}
	}
	return false
}

// Filter defines parameters for listing rooms.
type Filter struct {
	HotelID     string
	Status      string
	MinCapacity int
	MinPrice    *float64
	MaxPrice    *float64
	Amenities   []string
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}
