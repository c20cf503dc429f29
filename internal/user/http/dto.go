package http

import (
	"time"

	"github.com/stayflow/hotel-booking-backend/internal/loyalty"
	"github.com/stayflow/hotel-booking-backend/internal/pkg/request"
	"github.com/stayflow/hotel-booking-backend/internal/user"
)

// ListUsersRequest defines query parameters for listing users.
type ListUsersRequest struct {
	request.ListParams
	Email       string `form:"email"`
	DisplayName string `form:"display_name"`
	Role        string `form:"role" binding:"omitempty,oneof=customer admin"`
	IsActive    *bool  `form:"is_active"`
	SortBy      string `form:"sort_by" binding:"omitempty,oneof=email created_at last_login_at"`
}

// Validate performs custom validation for ListUsersRequest.
func (r *ListUsersRequest) Validate() error {
	return nil
}

// UserResponse is the shape of user data returned in API responses.
type UserResponse struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	DisplayName   *string        `json:"display_name"`
	Role          string         `json:"role"`
	LoyaltyPoints int            `json:"loyalty_points"`
	Preferences   map[string]any `json:"preferences"`
	CreatedAt     time.Time      `json:"created_at"`
	LastLoginAt   *time.Time     `json:"last_login_at"`
	IsActive      bool           `json:"is_active"`
}

// NewUserResponse converts domain user.User to UserResponse used by the API.
func NewUserResponse(u *user.User) UserResponse {
	// Make a copy of time fields to avoid accidental mutation from outside.
	createdAt := u.CreatedAt
	var lastLoginAt *time.Time
	if u.LastLoginAt != nil {
		ll := *u.LastLoginAt
		lastLoginAt = &ll
	}

	prefs := u.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}

	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		DisplayName:   u.DisplayName,
		Role:          string(u.Role),
		LoyaltyPoints: u.LoyaltyPoints,
		Preferences:   prefs,
		CreatedAt:     createdAt,
		LastLoginAt:   lastLoginAt,
		IsActive:      u.IsActive,
	}
}

// RegisterRequest defines the payload for user registration.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required"`
}

// Validate performs custom validation for RegisterRequest.
func (r *RegisterRequest) Validate() error {
	return nil
}

// LoginRequest defines the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Validate performs custom validation for LoginRequest.
func (r *LoginRequest) Validate() error {
	return nil
}

// UpdateProfileRequest defines fields a user may change on their own profile.
// Use pointers to distinguish between "field not sent" and "field sent as empty".
type UpdateProfileRequest struct {
	DisplayName *string        `json:"display_name"`
	Preferences map[string]any `json:"preferences"`
}

// Validate performs custom validation for UpdateProfileRequest.
func (r *UpdateProfileRequest) Validate() error {
	return nil
}

// UpdateUserRequest defines fields allowed to be updated via PATCH /users/:id.
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name"`
	Role        *string `json:"role" binding:"omitempty,oneof=customer admin"`
	IsActive    *bool   `json:"is_active"`
}

// Validate performs custom validation for UpdateUserRequest.
func (r *UpdateUserRequest) Validate() error {
	return nil
}

// LoginResponse returns the token and user info.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// MeResponse returns the current user info.
type MeResponse struct {
	User UserResponse `json:"user"`
}

// LoyaltyEntryResponse is one entry in a loyalty point history.
type LoyaltyEntryResponse struct {
	ID        string    `json:"id"`
	Points    int       `json:"points"`
	Reason    string    `json:"reason"`
	BookingID *string   `json:"booking_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewLoyaltyEntryResponse converts a loyalty.Entry to its API shape.
func NewLoyaltyEntryResponse(e *loyalty.Entry) LoyaltyEntryResponse {
	return LoyaltyEntryResponse{
		ID:        e.ID,
		Points:    e.Points,
		Reason:    e.Reason,
		BookingID: e.BookingID,
		CreatedAt: e.CreatedAt,
	}
}

// LoyaltyResponse returns the current balance plus a page of history entries.
type LoyaltyResponse struct {
	Balance int                    `json:"balance"`
	History []LoyaltyEntryResponse `json:"history"`
}
