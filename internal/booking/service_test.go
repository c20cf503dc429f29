package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stayflow/hotel-booking-backend/internal/room"
)

type fakeRepo struct {
	bookings    map[string]*Booking
	createCalls int
	updateCalls int
	overlap     bool
	createErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[string]*Booking)}
}

func (f *fakeRepo) Create(ctx context.Context, b *Booking) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = "booking-1"
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.bookings[b.ID] = b
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(ctx context.Context, b *Booking) error {
	f.updateCalls++
	if _, ok := f.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

func (f *fakeRepo) HasOverlap(ctx context.Context, roomID string, iv Interval, excludeBookingID string) (bool, error) {
	return f.overlap, nil
}

func (f *fakeRepo) ListActiveForRooms(ctx context.Context, roomIDs []string, iv Interval) ([]*Booking, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if b.Status == StatusCancelled {
			continue
		}
		for _, id := range roomIDs {
			if b.RoomID == id && Overlaps(iv, b.Interval()) {
				out = append(out, b)
			}
		}
	}
	return out, nil
}

type fakeRoomService struct {
	rooms map[string]*room.Room
}

func (f *fakeRoomService) Create(ctx context.Context, req room.CreateRequest) (*room.Room, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRoomService) GetByID(ctx context.Context, id string) (*room.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return nil, room.ErrNotFound
	}
	return r, nil
}

func (f *fakeRoomService) List(ctx context.Context, filter room.Filter) ([]*room.Room, int, error) {
	var out []*room.Room
	for _, r := range f.rooms {
		out = append(out, r)
	}
	return out, len(out), nil
}

func (f *fakeRoomService) Update(ctx context.Context, id string, req room.UpdateRequest) (*room.Room, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRoomService) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

func (f *fakeRoomService) SetImageURL(ctx context.Context, id string, url string) error {
	return errors.New("not implemented")
}

type fakeQueue struct {
	kinds []string
	err   error
}

func (f *fakeQueue) Enqueue(ctx context.Context, kind string, payload any) error {
	if f.err != nil {
		return f.err
	}
	f.kinds = append(f.kinds, kind)
	return nil
}

func newTestService(repo *fakeRepo, queue *fakeQueue) Service {
	rooms := &fakeRoomService{rooms: map[string]*room.Room{
		"room-1": {ID: "room-1", HotelID: "hotel-1", Name: "Deluxe 101", Capacity: 2, Price: 120, Status: room.StatusAvailable},
		"room-m": {ID: "room-m", HotelID: "hotel-1", Name: "Closed 102", Capacity: 2, Price: 90, Status: room.StatusMaintenance},
	}}
	return NewService(repo, rooms, queue, zap.NewNop(), 100)
}

func futureDay(d int) time.Time {
	return time.Now().UTC().AddDate(0, 0, d).Truncate(time.Hour)
}

func TestServiceCreate(t *testing.T) {
	base := CreateRequest{
		UserID:    "user-1",
		UserEmail: "guest@example.com",
		RoomID:    "room-1",
		CheckIn:   futureDay(7),
		CheckOut:  futureDay(10),
		Guests:    2,
	}

	t.Run("success leaves booking pending and enqueues side effects", func(t *testing.T) {
		repo := newFakeRepo()
		queue := &fakeQueue{}
		svc := newTestService(repo, queue)

		b, err := svc.Create(context.Background(), base)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, b.Status)
		assert.Equal(t, "Deluxe 101", b.RoomName)
		assert.Equal(t, "hotel-1", b.HotelID)
		assert.Equal(t, []string{"notification.send", "loyalty.credit"}, queue.kinds)
	})

	t.Run("check-in equal to check-out is rejected before persistence", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, &fakeQueue{})

		req := base
		req.CheckOut = req.CheckIn
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInterval)
		assert.Zero(t, repo.createCalls)
	})

	t.Run("check-in in the past is rejected", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, &fakeQueue{})

		req := base
		req.CheckIn = time.Now().UTC().Add(-24 * time.Hour)
		req.CheckOut = futureDay(2)
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrStartTimePast)
	})

	t.Run("zero guests is rejected", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), &fakeQueue{})

		req := base
		req.Guests = 0
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidGuests)
	})

	t.Run("unknown room", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), &fakeQueue{})

		req := base
		req.RoomID = "room-x"
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("room under maintenance is not bookable", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), &fakeQueue{})

		req := base
		req.RoomID = "room-m"
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrRoomMaintenance)
	})

	t.Run("guest count above capacity", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), &fakeQueue{})

		req := base
		req.Guests = 5
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("overlap pre-check rejects without persisting", func(t *testing.T) {
		repo := newFakeRepo()
		repo.overlap = true
		svc := newTestService(repo, &fakeQueue{})

		_, err := svc.Create(context.Background(), base)
		assert.ErrorIs(t, err, ErrConflict)
		assert.Zero(t, repo.createCalls)
	})

	t.Run("enqueue failure does not fail the booking", func(t *testing.T) {
		repo := newFakeRepo()
		queue := &fakeQueue{err: errors.New("outbox down")}
		svc := newTestService(repo, queue)

		b, err := svc.Create(context.Background(), base)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, b.Status)
	})
}

func TestServiceUpdateTransitions(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	seed := func(status Status) (*fakeRepo, Service) {
		repo := newFakeRepo()
		repo.bookings["booking-1"] = &Booking{
			ID:       "booking-1",
			RoomID:   "room-1",
			RoomName: "Deluxe 101",
			UserID:   "user-1",
			CheckIn:  futureDay(7),
			CheckOut: futureDay(10),
			Guests:   2,
			Status:   status,
		}
		return repo, newTestService(repo, &fakeQueue{})
	}

	t.Run("owner can cancel a pending booking", func(t *testing.T) {
		_, svc := seed(StatusPending)

		b, err := svc.Update(context.Background(), "booking-1",
			UpdateRequest{Status: strPtr("cancelled")}, "user-1", false)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, b.Status)
	})

	t.Run("owner cannot confirm", func(t *testing.T) {
		_, svc := seed(StatusPending)

		_, err := svc.Update(context.Background(), "booking-1",
			UpdateRequest{Status: strPtr("confirmed")}, "user-1", false)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("admin confirms a pending booking", func(t *testing.T) {
		_, svc := seed(StatusPending)

		b, err := svc.Update(context.Background(), "booking-1",
			UpdateRequest{Status: strPtr("confirmed")}, "admin-1", true)
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, b.Status)
	})

	t.Run("admin cancels a confirmed booking", func(t *testing.T) {
		_, svc := seed(StatusConfirmed)

		b, err := svc.Update(context.Background(), "booking-1",
			UpdateRequest{Status: strPtr("cancelled")}, "admin-1", true)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, b.Status)
	})

	t.Run("confirmed cannot go back to pending", func(t *testing.T) {
		repo, svc := seed(StatusConfirmed)

		_, err := svc.Update(context.Background(), "booking-1",
			UpdateRequest{Status: strPtr("pending")}, "admin-1", true)
		assert.ErrorIs(t, err, ErrIllegalTransition)
		assert.Zero(t, repo.updateCalls)
		assert.Equal(t, StatusConfirmed, repo.bookings["booking-1"].Status)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		_, svc := seed(StatusCancelled)

		_, err := svc.Update(context.Background(), "booking-1",
			UpdateRequest{Status: strPtr("confirmed")}, "admin-1", true)
		assert.ErrorIs(t, err, ErrIllegalTransition)
	})

	t.Run("stranger cannot touch the booking", func(t *testing.T) {
		_, svc := seed(StatusPending)

		_, err := svc.Update(context.Background(), "booking-1",
			UpdateRequest{Status: strPtr("cancelled")}, "user-2", false)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, svc := seed(StatusPending)

		_, err := svc.Update(context.Background(), "booking-x",
			UpdateRequest{Status: strPtr("cancelled")}, "user-1", false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceSearchRooms(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings["b1"] = &Booking{
		ID:       "b1",
		RoomID:   "room-1",
		UserID:   "user-1",
		CheckIn:  futureDay(7),
		CheckOut: futureDay(10),
		Status:   StatusConfirmed,
	}
	svc := newTestService(repo, &fakeQueue{})

	t.Run("invalid interval is rejected", func(t *testing.T) {
		in := futureDay(5)
		out := futureDay(5)
		_, err := svc.SearchRooms(context.Background(), SearchCriteria{CheckIn: &in, CheckOut: &out})
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("booked room is excluded for overlapping dates", func(t *testing.T) {
		in := futureDay(8)
		out := futureDay(9)
		rooms, err := svc.SearchRooms(context.Background(), SearchCriteria{CheckIn: &in, CheckOut: &out})
		require.NoError(t, err)
		for _, r := range rooms {
			assert.NotEqual(t, "room-1", r.ID)
		}
	})

	t.Run("no dates means no availability filtering", func(t *testing.T) {
		rooms, err := svc.SearchRooms(context.Background(), SearchCriteria{})
		require.NoError(t, err)
		assert.Len(t, rooms, 2)
	})
}

func TestServiceDelete(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings["booking-1"] = &Booking{ID: "booking-1", UserID: "user-1", Status: StatusPending}
	svc := newTestService(repo, &fakeQueue{})

	t.Run("stranger cannot delete", func(t *testing.T) {
		err := svc.Delete(context.Background(), "booking-1", "user-2", false)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("owner deletes own booking", func(t *testing.T) {
		err := svc.Delete(context.Background(), "booking-1", "user-1", false)
		assert.NoError(t, err)
	})
}
