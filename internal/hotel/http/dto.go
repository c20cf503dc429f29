package http

import (
	"time"

	"github.com/stayflow/hotel-booking-backend/internal/hotel"
	"github.com/stayflow/hotel-booking-backend/internal/pkg/request"
)

// ListHotelsRequest defines query parameters for listing hotels.
type ListHotelsRequest struct {
	request.ListParams
	City    string `form:"city"`
	Keyword string `form:"keyword"`
	Active  *bool  `form:"active"`
}

// Validate performs custom validation for ListHotelsRequest.
func (r *ListHotelsRequest) Validate() error {
	return nil
}

// HotelResponse is the shape of hotel data returned in API responses.
type HotelResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Description string    `json:"description"`
	Longitude   float64   `json:"longitude"`
	Latitude    float64   `json:"latitude"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// HotelTag is a brief representation of a hotel for embedding in other responses.
type HotelTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewHotelResponse(h *hotel.Hotel) HotelResponse {
	return HotelResponse{
		ID:          h.ID,
		Name:        h.Name,
		City:        h.City,
		Address:     h.Address,
		Description: h.Description,
		Longitude:   h.Longitude,
		Latitude:    h.Latitude,
		IsActive:    h.IsActive,
		CreatedAt:   h.CreatedAt,
	}
}

type CreateHotelRequest struct {
	Name        string  `json:"name" binding:"required"`
	City        string  `json:"city" binding:"required"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
}

// Validate performs custom validation for CreateHotelRequest.
func (r *CreateHotelRequest) Validate() error {
	return nil
}

// UpdateHotelRequest defines fields allowed to be updated via PATCH /hotels/:id.
type UpdateHotelRequest struct {
	Name        *string `json:"name"`
	City        *string `json:"city"`
	Address     *string `json:"address"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// Validate performs custom validation for UpdateHotelRequest.
func (r *UpdateHotelRequest) Validate() error {
	return nil
}
