package loyalty

import "context"

type Service interface {
	// Credit appends a ledger entry and bumps the user's balance atomically.
	Credit(ctx context.Context, req CreditRequest) (*Entry, error)
	Balance(ctx context.Context, userID string) (int, error)
	History(ctx context.Context, userID string, page, pageSize int) ([]*Entry, int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Credit(ctx context.Context, req CreditRequest) (*Entry, error) {
	if req.Points <= 0 {
		return nil, ErrInvalidPoints
	}

	e := &Entry{
		UserID:    req.UserID,
		Points:    req.Points,
		Reason:    req.Reason,
		BookingID: req.BookingID,
	}

	if err := s.repo.Credit(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Balance(ctx context.Context, userID string) (int, error) {
	return s.repo.Balance(ctx, userID)
}

func (s *service) History(ctx context.Context, userID string, page, pageSize int) ([]*Entry, int, error) {
	return s.repo.List(ctx, userID, page, pageSize)
}
