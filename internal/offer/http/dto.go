package http

import (
	"time"

	"github.com/stayflow/hotel-booking-backend/internal/offer"
	"github.com/stayflow/hotel-booking-backend/internal/pkg/request"
)

// ListOffersRequest defines query parameters for listing special offers.
type ListOffersRequest struct {
	request.ListParams
	ActiveOnly bool `form:"active_only"`
}

// Validate performs custom validation for ListOffersRequest.
func (r *ListOffersRequest) Validate() error {
	return nil
}

// OfferResponse is the shape of offer data returned in API responses.
type OfferResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DiscountPercent int       `json:"discount_percent"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewOfferResponse(o *offer.Offer) OfferResponse {
	return OfferResponse{
		ID:              o.ID,
		Title:           o.Title,
		Description:     o.Description,
		DiscountPercent: o.DiscountPercent,
		IsActive:        o.IsActive,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

type CreateOfferRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	DiscountPercent int    `json:"discount_percent" binding:"required,min=0,max=100"`
}

// Validate performs custom validation for CreateOfferRequest.
func (r *CreateOfferRequest) Validate() error {
	return nil
}

// UpdateOfferRequest defines fields allowed to be updated via PATCH /offers/:id.
type UpdateOfferRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	DiscountPercent *int    `json:"discount_percent" binding:"omitempty,min=0,max=100"`
	IsActive        *bool   `json:"is_active"`
}

// Validate performs custom validation for UpdateOfferRequest.
func (r *UpdateOfferRequest) Validate() error {
	return nil
}
