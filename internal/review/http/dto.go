package http

import (
	"time"

	"github.com/stayflow/hotel-booking-backend/internal/pkg/request"
	"github.com/stayflow/hotel-booking-backend/internal/review"
)

// ListReviewsRequest defines query parameters for listing reviews.
type ListReviewsRequest struct {
	request.ListParams
	RoomID string `form:"room_id" binding:"omitempty,uuid"`
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}

// Validate performs custom validation for ListReviewsRequest.
func (r *ListReviewsRequest) Validate() error {
	return nil
}

// ReviewResponse is the shape of review data returned in API responses.
type ReviewResponse struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func NewReviewResponse(r *review.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		RoomID:    r.RoomID,
		UserID:    r.UserID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

type CreateReviewRequest struct {
	RoomID  string `json:"room_id" binding:"required,uuid"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}

// Validate performs custom validation for CreateReviewRequest.
func (r *CreateReviewRequest) Validate() error {
	return nil
}
