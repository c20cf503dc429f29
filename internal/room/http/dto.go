package http

import (
	"time"

	"github.com/stayflow/hotel-booking-backend/internal/booking"
	"github.com/stayflow/hotel-booking-backend/internal/pkg/request"
	"github.com/stayflow/hotel-booking-backend/internal/room"
)

// ListRoomsRequest defines query parameters for listing rooms.
type ListRoomsRequest struct {
	request.ListParams
	HotelID     string   `form:"hotel_id" binding:"omitempty,uuid"`
	Status      string   `form:"status" binding:"omitempty,oneof=available occupied maintenance"`
	MinCapacity int      `form:"min_capacity" binding:"omitempty,min=1"`
	MinPrice    *float64 `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice    *float64 `form:"max_price" binding:"omitempty,min=0"`
	Amenities   []string `form:"amenities"`
	SortBy      string   `form:"sort_by" binding:"omitempty,oneof=name price capacity created_at"`
}

// Validate performs custom validation for ListRoomsRequest.
func (r *ListRoomsRequest) Validate() error {
	return nil
}

// SearchRoomsRequest defines query parameters for room availability search.
// When both check_in and check_out are given, rooms with overlapping active
// bookings are excluded from the result.
type SearchRoomsRequest struct {
	HotelID   string     `form:"hotel_id" binding:"omitempty,uuid"`
	Guests    int        `form:"guests" binding:"omitempty,min=1"`
	MinPrice  *float64   `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice  *float64   `form:"max_price" binding:"omitempty,min=0"`
	Amenities []string   `form:"amenities"`
	CheckIn   *time.Time `form:"check_in" time_format:"2006-01-02T15:04:05Z07:00"`
	CheckOut  *time.Time `form:"check_out" time_format:"2006-01-02T15:04:05Z07:00"`
}

// Validate performs custom validation for SearchRoomsRequest.
func (r *SearchRoomsRequest) Validate() error {
	if (r.CheckIn == nil) != (r.CheckOut == nil) {
		return booking.ErrInvalidInterval
	}
	return nil
}

// RoomResponse is the shape of room data returned in API responses.
type RoomResponse struct {
	ID          string    `json:"id"`
	HotelID     string    `json:"hotel_id"`
	Name        string    `json:"name"`
	FloorNumber int       `json:"floor_number"`
	Capacity    int       `json:"capacity"`
	Price       float64   `json:"price"`
	Amenities   []string  `json:"amenities"`
	Status      string    `json:"status"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// RoomTag is a brief representation of a room for embedding in other responses.
type RoomTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return RoomResponse{
		ID:          r.ID,
		HotelID:     r.HotelID,
		Name:        r.Name,
		FloorNumber: r.FloorNumber,
		Capacity:    r.Capacity,
		Price:       r.Price,
		Amenities:   amenities,
		Status:      string(r.Status),
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt,
	}
}

// SearchRoomResponse is a room search hit. DiscountedPrice reflects the best
// active special offer at search time.
type SearchRoomResponse struct {
	RoomResponse
	DiscountedPrice float64 `json:"discounted_price"`
}

type CreateRoomRequest struct {
	HotelID     string   `json:"hotel_id" binding:"required,uuid"`
	Name        string   `json:"name" binding:"required"`
	FloorNumber int      `json:"floor_number"`
	Capacity    int      `json:"capacity" binding:"required,min=1"`
	Price       float64  `json:"price" binding:"min=0"`
	Amenities   []string `json:"amenities"`
}

// Validate performs custom validation for CreateRoomRequest.
func (r *CreateRoomRequest) Validate() error {
	return nil
}

// UpdateRoomRequest defines fields allowed to be updated via PATCH /rooms/:id.
type UpdateRoomRequest struct {
	Name      *string   `json:"name"`
	Capacity  *int      `json:"capacity" binding:"omitempty,min=1"`
	Price     *float64  `json:"price" binding:"omitempty,min=0"`
	Amenities *[]string `json:"amenities"`
	Status    *string   `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
}

// Validate performs custom validation for UpdateRoomRequest.
func (r *UpdateRoomRequest) Validate() error {
	return nil
}
