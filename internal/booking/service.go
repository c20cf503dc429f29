package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/stayflow/hotel-booking-backend/internal/loyalty"
	"github.com/stayflow/hotel-booking-backend/internal/notification"
	"github.com/stayflow/hotel-booking-backend/internal/outbox"
	"github.com/stayflow/hotel-booking-backend/internal/room"
)

// EventQueue records post-commit side effects for asynchronous delivery.
// Enqueue failures must never fail the triggering operation.
type EventQueue interface {
	Enqueue(ctx context.Context, kind string, payload any) error
}

// searchCandidateLimit caps how many rooms a single search considers.
const searchCandidateLimit = 200

type CreateRequest struct {
	UserID    string
	UserEmail string
	RoomID    string
	CheckIn   time.Time
	CheckOut  time.Time
	Guests    int
}

type UpdateRequest struct {
	Status *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// Update applies a status transition. Owners may only cancel their own
	// bookings; admins may confirm or cancel any booking.
	Update(ctx context.Context, id string, req UpdateRequest, actorUserID string, isAdmin bool) (*Booking, error)
	Delete(ctx context.Context, id string, actorUserID string, isAdmin bool) error
	// SearchRooms returns rooms matching the criteria, including date
	// availability when the criteria carry a check-in/check-out range.
	SearchRooms(ctx context.Context, criteria SearchCriteria) ([]*room.Room, error)
}

type service struct {
	repo        Repository
	roomService room.Service
	events      EventQueue
	logger      *zap.Logger

	loyaltyPointsPerBooking int
}

func NewService(repo Repository, roomService room.Service, events EventQueue, logger *zap.Logger, loyaltyPointsPerBooking int) Service {
	return &service{
		repo:                    repo,
		roomService:             roomService,
		events:                  events,
		logger:                  logger,
		loyaltyPointsPerBooking: loyaltyPointsPerBooking,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	iv := Interval{Start: req.CheckIn, End: req.CheckOut}
	if err := iv.Validate(); err != nil {
		return nil, err
	}
	if req.CheckIn.Before(time.Now().UTC()) {
		return nil, ErrStartTimePast
	}
	if req.Guests < 1 {
		return nil, ErrInvalidGuests
	}

	rm, err := s.roomService.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	// Operational status is independent of booking-derived availability, but
	// a room pulled for maintenance is never bookable.
	if rm.Status == room.StatusMaintenance {
		return nil, ErrRoomMaintenance
	}
	if req.Guests > rm.Capacity {
		return nil, ErrCapacityExceeded
	}

	// Optimistic pre-check. Two concurrent requests can both pass it; the
	// exclusion constraint on bookings is the actual guarantee, surfaced by
	// the repository as ErrConflict.
	hasOverlap, err := s.repo.HasOverlap(ctx, req.RoomID, iv, "")
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrConflict
	}

	b := &Booking{
		RoomID:    req.RoomID,
		RoomName:  rm.Name,
		HotelID:   rm.HotelID,
		UserID:    req.UserID,
		UserEmail: req.UserEmail,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Guests:    req.Guests,
		Status:    StatusPending,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.enqueueNotification(ctx, b.UserEmail, "Booking Confirmation",
		fmt.Sprintf("Your booking for %s has been received and is pending confirmation.", b.RoomName))
	s.enqueueLoyaltyCredit(ctx, b)

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorUserID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isOwner := b.UserID == actorUserID
	if !isAdmin && !isOwner {
		return nil, ErrPermissionDenied
	}

	if req.Status == nil {
		return b, nil
	}

	next := Status(*req.Status)
	if !next.Valid() {
		return nil, ErrInvalidStatus
	}
	// Owners may only cancel; confirmation is an admin action.
	if !isAdmin && next != StatusCancelled {
		return nil, ErrPermissionDenied
	}
	if !b.Status.CanTransitionTo(next) {
		return nil, ErrIllegalTransition
	}

	b.Status = next
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.enqueueNotification(ctx, b.UserEmail, "Booking Update",
		fmt.Sprintf("Your booking for %s has been %s.", b.RoomName, next))

	return b, nil
}

func (s *service) Delete(ctx context.Context, id string, actorUserID string, isAdmin bool) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin && b.UserID != actorUserID {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) SearchRooms(ctx context.Context, criteria SearchCriteria) ([]*room.Room, error) {
	if iv, ok := criteria.Interval(); ok {
		if err := iv.Validate(); err != nil {
			return nil, err
		}
	}

	// Static filters are pushed into the catalog query; the engine re-applies
	// the full pipeline, which keeps FilterRooms the single source of truth.
	candidates, _, err := s.roomService.List(ctx, room.Filter{
		HotelID:     criteria.HotelID,
		MinCapacity: criteria.Guests,
		MinPrice:    criteria.MinPrice,
		MaxPrice:    criteria.MaxPrice,
		Amenities:   criteria.Amenities,
		PageSize:    searchCandidateLimit,
	})
	if err != nil {
		return nil, err
	}

	var existing []*Booking
	if iv, ok := criteria.Interval(); ok && len(candidates) > 0 {
		ids := make([]string, len(candidates))
		for i, r := range candidates {
			ids[i] = r.ID
		}
		existing, err = s.repo.ListActiveForRooms(ctx, ids, iv)
		if err != nil {
			return nil, err
		}
	}

	return FilterRooms(candidates, criteria, existing), nil
}

// enqueueNotification records a best-effort notification. Failures are
// logged and swallowed: a lost notification never fails the booking.
func (s *service) enqueueNotification(ctx context.Context, to, subject, body string) {
	msg := notification.Message{To: to, Subject: subject, Body: body}
	if err := s.events.Enqueue(ctx, outbox.KindNotification, msg); err != nil {
		s.logger.Error("failed to enqueue booking notification",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err),
		)
	}
}

func (s *service) enqueueLoyaltyCredit(ctx context.Context, b *Booking) {
	credit := loyalty.CreditRequest{
		UserID:    b.UserID,
		Points:    s.loyaltyPointsPerBooking,
		Reason:    "booking created",
		BookingID: &b.ID,
	}
	if err := s.events.Enqueue(ctx, outbox.KindLoyaltyCredit, credit); err != nil {
		s.logger.Error("failed to enqueue loyalty credit",
			zap.String("user_id", b.UserID),
			zap.String("booking_id", b.ID),
			zap.Error(err),
		)
	}
}
