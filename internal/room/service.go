package room

import (
	"context"
	"strings"

	"github.com/stayflow/hotel-booking-backend/internal/hotel"
)

type CreateRequest struct {
	HotelID     string
	Name        string
	FloorNumber int
	Capacity    int
	Price       float64
	Amenities   []string
}

type UpdateRequest struct {
	Name      *string
	Capacity  *int
	Price     *float64
	Amenities *[]string
	Status    *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	Delete(ctx context.Context, id string) error
	SetImageURL(ctx context.Context, id string, url string) error
}

type service struct {
	repo         Repository
	hotelService hotel.Service
}

func NewService(repo Repository, hotelService hotel.Service) Service {
	return &service{
		repo:         repo,
		hotelService: hotelService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if req.HotelID == "" {
		return nil, ErrInvalidHotel
	}

	if _, err := s.hotelService.GetByID(ctx, req.HotelID); err != nil {
		return nil, ErrInvalidHotel
	}

	r := &Room{
		HotelID:     req.HotelID,
		Name:        req.Name,
		FloorNumber: req.FloorNumber,
		Capacity:    req.Capacity,
		Price:       req.Price,
		Amenities:   req.Amenities,
		Status:      StatusAvailable,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		r.Name = *req.Name
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, ErrInvalidCapacity
		}
		r.Capacity = *req.Capacity
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrInvalidPrice
		}
		r.Price = *req.Price
	}
	if req.Amenities != nil {
		r.Amenities = *req.Amenities
	}
	if req.Status != nil {
		st := OperationalStatus(*req.Status)
		if !st.Valid() {
			return nil, ErrInvalidStatus
		}
		r.Status = st
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) SetImageURL(ctx context.Context, id string, url string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SetImageURL(ctx, id, url)
}
