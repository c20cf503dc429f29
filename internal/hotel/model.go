package hotel

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("hotel not found")
	ErrEmptyName = errors.New("name cannot be empty")
	ErrEmptyCity = errors.New("city cannot be empty")
)

// Hotel represents a property (branch) that owns bookable rooms.
type Hotel struct {
	ID          string
	Name        string
	City        string
	Address     string
	Description string
	Longitude   float64
	Latitude    float64
	IsActive    bool
	CreatedAt   time.Time
}

// Filter defines parameters for listing hotels.
type Filter struct {
	City     string
	Keyword  string // Search in Name or Address
	Active   *bool
	Page     int
	PageSize int
}
