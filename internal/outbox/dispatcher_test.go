package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/stayflow/hotel-booking-backend/internal/pkg/retry"
)

type fakeOutboxRepo struct {
	done        []string
	failed      []string
	rescheduled []string
	lastAttempt int
	lastNextAt  time.Time
}

func (f *fakeOutboxRepo) Enqueue(ctx context.Context, kind string, payload any) error {
	return nil
}

func (f *fakeOutboxRepo) ListDue(ctx context.Context, now time.Time, limit int) ([]*Event, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkDone(ctx context.Context, id string) error {
	f.done = append(f.done, id)
	return nil
}

func (f *fakeOutboxRepo) MarkFailed(ctx context.Context, id string, lastError string) error {
	f.failed = append(f.failed, id)
	return nil
}

func (f *fakeOutboxRepo) Reschedule(ctx context.Context, id string, attempts int, lastError string, nextAttemptAt time.Time) error {
	f.rescheduled = append(f.rescheduled, id)
	f.lastAttempt = attempts
	f.lastNextAt = nextAttemptAt
	return nil
}

func newTestDispatcher(repo Repository) *Dispatcher {
	cfg := DispatcherConfig{
		PollInterval: 10 * time.Millisecond,
		BatchSize:    10,
		Retry: retry.Config{
			InitialInterval: time.Minute,
			MaxInterval:     time.Hour,
			Multiplier:      2.0,
			MaxAttempts:     3,
		},
	}
	return NewDispatcher(repo, cfg, zap.NewNop())
}

func event(kind string, attempts int) *Event {
	return &Event{
		ID:       "event-1",
		Kind:     kind,
		Payload:  json.RawMessage(`{}`),
		Status:   StatusPending,
		Attempts: attempts,
	}
}

func TestDispatchOneSuccess(t *testing.T) {
	repo := &fakeOutboxRepo{}
	d := newTestDispatcher(repo)

	var got json.RawMessage
	d.Handle("test.kind", func(ctx context.Context, payload json.RawMessage) error {
		got = payload
		return nil
	})

	d.dispatchOne(context.Background(), event("test.kind", 0))

	assert.Equal(t, []string{"event-1"}, repo.done)
	assert.Empty(t, repo.failed)
	assert.Empty(t, repo.rescheduled)
	assert.JSONEq(t, `{}`, string(got))
}

func TestDispatchOneTransientFailureReschedules(t *testing.T) {
	repo := &fakeOutboxRepo{}
	d := newTestDispatcher(repo)

	d.Handle("test.kind", func(ctx context.Context, payload json.RawMessage) error {
		return errors.New("downstream unavailable")
	})

	before := time.Now().UTC()
	d.dispatchOne(context.Background(), event("test.kind", 0))

	assert.Equal(t, []string{"event-1"}, repo.rescheduled)
	assert.Equal(t, 1, repo.lastAttempt)
	assert.True(t, repo.lastNextAt.After(before))
	assert.Empty(t, repo.done)
	assert.Empty(t, repo.failed)
}

func TestDispatchOnePermanentFailure(t *testing.T) {
	repo := &fakeOutboxRepo{}
	d := newTestDispatcher(repo)

	d.Handle("test.kind", func(ctx context.Context, payload json.RawMessage) error {
		return retry.Permanent(errors.New("malformed payload"))
	})

	d.dispatchOne(context.Background(), event("test.kind", 0))

	assert.Equal(t, []string{"event-1"}, repo.failed)
	assert.Empty(t, repo.rescheduled)
}

func TestDispatchOneExhaustedAttempts(t *testing.T) {
	repo := &fakeOutboxRepo{}
	d := newTestDispatcher(repo)

	d.Handle("test.kind", func(ctx context.Context, payload json.RawMessage) error {
		return errors.New("still failing")
	})

	// MaxAttempts is 3; this delivery is the third attempt.
	d.dispatchOne(context.Background(), event("test.kind", 2))

	assert.Equal(t, []string{"event-1"}, repo.failed)
	assert.Empty(t, repo.rescheduled)
}

func TestDispatchOneUnknownKind(t *testing.T) {
	repo := &fakeOutboxRepo{}
	d := newTestDispatcher(repo)

	d.dispatchOne(context.Background(), event("nobody.handles.this", 0))

	assert.Equal(t, []string{"event-1"}, repo.failed)
	assert.Empty(t, repo.done)
}

func TestDispatcherStartStop(t *testing.T) {
	repo := &fakeOutboxRepo{}
	d := newTestDispatcher(repo)

	ctx := context.Background()
	assert.NoError(t, d.Start(ctx))
	assert.Error(t, d.Start(ctx), "second start must be rejected")

	d.Stop()
	// Stop is idempotent
	d.Stop()
}
