package review

import (
	"context"
	"strings"

	"github.com/stayflow/hotel-booking-backend/internal/room"
)

type CreateRequest struct {
	RoomID  string
	UserID  string
	Rating  int
	Comment string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Review, error)
	List(ctx context.Context, filter Filter) ([]*Review, int, error)
	// Delete removes a review. Non-admins may only delete their own.
	Delete(ctx context.Context, id string, actorUserID string, isAdmin bool) error
}

type service struct {
	repo        Repository
	roomService room.Service
}

func NewService(repo Repository, roomService room.Service) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(req.Comment) == "" {
		return nil, ErrEmptyComment
	}

	if _, err := s.roomService.GetByID(ctx, req.RoomID); err != nil {
		return nil, ErrInvalidRoom
	}

	rv := &Review{
		RoomID:  req.RoomID,
		UserID:  req.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Review, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Delete(ctx context.Context, id string, actorUserID string, isAdmin bool) error {
	rv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin && rv.UserID != actorUserID {
		return ErrNotOwner
	}

	return s.repo.Delete(ctx, id)
}
