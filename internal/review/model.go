package review

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("review not found")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyComment  = errors.New("comment cannot be empty")
	ErrInvalidRoom   = errors.New("invalid room_id")
	ErrNotOwner      = errors.New("review belongs to another user")
)

// Review is a guest's rating of a room.
type Review struct {
	ID        string
	RoomID    string
	UserID    string
	UserName  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// Filter defines parameters for listing reviews.
type Filter struct {
	RoomID   string
	UserID   string
	Page     int
	PageSize int
}
