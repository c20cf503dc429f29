package booking

import (
	"net/http"
	"time"

	"github.com/stayflow/hotel-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrConflict          = apperror.New(http.StatusConflict, "room already booked for the requested dates")
	ErrInvalidInterval   = apperror.New(http.StatusBadRequest, "check-in must be before check-out")
	ErrStartTimePast     = apperror.New(http.StatusBadRequest, "cannot create booking in the past")
	ErrIllegalTransition = apperror.New(http.StatusBadRequest, "illegal booking status transition")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidGuests     = apperror.New(http.StatusBadRequest, "guest count must be at least 1")
	ErrRoomNotFound      = apperror.New(http.StatusNotFound, "room not found")
	ErrRoomMaintenance   = apperror.New(http.StatusConflict, "room is under maintenance")
	ErrCapacityExceeded  = apperror.New(http.StatusBadRequest, "guest count exceeds room capacity")
	ErrPermissionDenied  = apperror.New(http.StatusForbidden, "permission denied")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known booking status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Legal moves: pending -> confirmed, pending -> cancelled, confirmed -> cancelled.
// Cancelled is terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	}
	return false
}

// Booking represents a stay reservation for a room.
type Booking struct {
	ID        string
	RoomID    string
	RoomName  string
	HotelID   string
	HotelName string
	UserID    string
	UserEmail string
	CheckIn   time.Time
	CheckOut  time.Time
	Guests    int
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interval returns the booking's stay range as a half-open interval.
func (b *Booking) Interval() Interval {
	return Interval{Start: b.CheckIn, End: b.CheckOut}
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID      string
	RoomID      string
	HotelID     string
	Status      string
	CheckInFrom *time.Time // Filter bookings checking in after this time
	CheckInTo   *time.Time // Filter bookings checking in before this time
	Page        int
	PageSize    int
	SortBy      string
	SortOrder   string
}
