package http

import (
	"time"

	"github.com/stayflow/hotel-booking-backend/internal/booking"
	hotelHttp "github.com/stayflow/hotel-booking-backend/internal/hotel/http"
	"github.com/stayflow/hotel-booking-backend/internal/pkg/request"
	roomHttp "github.com/stayflow/hotel-booking-backend/internal/room/http"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	RoomID      string     `form:"room_id" binding:"omitempty,uuid"`
	HotelID     string     `form:"hotel_id" binding:"omitempty,uuid"`
	Status      string     `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	UserID      string     `form:"user_id" binding:"omitempty,uuid"`
	CheckInFrom *time.Time `form:"check_in_from" time_format:"2006-01-02T15:04:05Z07:00"`
	CheckInTo   *time.Time `form:"check_in_to" time_format:"2006-01-02T15:04:05Z07:00"`
	SortBy      string     `form:"sort_by" binding:"omitempty,oneof=check_in check_out created_at status"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	if r.CheckInFrom != nil && r.CheckInTo != nil {
		if r.CheckInFrom.After(*r.CheckInTo) {
			return booking.ErrInvalidInterval
		}
	}
	return nil
}

type BookingResponse struct {
	ID        string             `json:"id"`
	Room      roomHttp.RoomTag   `json:"room"`
	Hotel     hotelHttp.HotelTag `json:"hotel"`
	UserID    string             `json:"user_id"`
	UserEmail string             `json:"user_email"`
	CheckIn   time.Time          `json:"check_in"`
	CheckOut  time.Time          `json:"check_out"`
	Guests    int                `json:"guests"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Room:      roomHttp.RoomTag{ID: b.RoomID, Name: b.RoomName},
		Hotel:     hotelHttp.HotelTag{ID: b.HotelID, Name: b.HotelName},
		UserID:    b.UserID,
		UserEmail: b.UserEmail,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		Guests:    b.Guests,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type CreateBookingRequest struct {
	RoomID   string    `json:"room_id" binding:"required,uuid"`
	CheckIn  time.Time `json:"check_in" binding:"required"`
	CheckOut time.Time `json:"check_out" binding:"required"`
	Guests   int       `json:"guests" binding:"required,min=1"`
}

// Validate performs custom validation for CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	if !r.CheckIn.Before(r.CheckOut) {
		return booking.ErrInvalidInterval
	}
	return nil
}

type UpdateBookingRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}

// Validate performs custom validation for UpdateBookingRequest.
func (r *UpdateBookingRequest) Validate() error {
	return nil
}
