package loyalty

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidPoints = errors.New("points must be positive")
)

// Entry is a single ledger record. The user's balance is the sum of their
// entries and is kept denormalized on the user row.
type Entry struct {
	ID        string
	UserID    string
	Points    int
	Reason    string
	BookingID *string
	CreatedAt time.Time
}

// CreditRequest is the payload for crediting points to a user.
type CreditRequest struct {
	UserID    string  `json:"user_id"`
	Points    int     `json:"points"`
	Reason    string  `json:"reason"`
	BookingID *string `json:"booking_id,omitempty"`
}
