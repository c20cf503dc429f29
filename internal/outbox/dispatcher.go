package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/stayflow/hotel-booking-backend/internal/pkg/retry"
)

// Handler processes one event payload. Returning an error reschedules the
// event with backoff; wrap with retry.Permanent to fail it immediately.
type Handler func(ctx context.Context, payload json.RawMessage) error

// DispatcherConfig controls polling of the outbox table.
type DispatcherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	Retry        retry.Config
}

// DefaultDispatcherConfig returns the default dispatcher settings.
func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    50,
		Retry:        retry.DefaultConfig(),
	}
}

// Dispatcher polls the outbox and delivers pending events to registered
// handlers. It runs in its own goroutine; Stop blocks until the current
// batch finishes.
type Dispatcher struct {
	repo     Repository
	config   DispatcherConfig
	logger   *zap.Logger
	handlers map[string]Handler

	stopCh  chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewDispatcher creates a dispatcher. Register handlers before calling Start.
func NewDispatcher(repo Repository, config DispatcherConfig, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		repo:     repo,
		config:   config,
		logger:   logger,
		handlers: make(map[string]Handler),
		stopCh:   make(chan struct{}),
	}
}

// Handle registers the handler for an event kind.
func (d *Dispatcher) Handle(kind string, h Handler) {
	d.handlers[kind] = h
}

// Start begins polling until Stop is called or the context is cancelled.
func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return fmt.Errorf("outbox dispatcher already running")
	}
	d.running = true
	d.mu.Unlock()

	d.logger.Info("starting outbox dispatcher",
		zap.Duration("poll_interval", d.config.PollInterval),
		zap.Int("batch_size", d.config.BatchSize),
	)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ticker := time.NewTicker(d.config.PollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-d.stopCh:
				return
			case <-ticker.C:
				d.dispatchDue(ctx)
			}
		}
	}()

	return nil
}

// Stop signals the polling loop to exit and waits for it.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopCh)
	d.wg.Wait()
	d.logger.Info("outbox dispatcher stopped")
}

func (d *Dispatcher) dispatchDue(ctx context.Context) {
	events, err := d.repo.ListDue(ctx, time.Now().UTC(), d.config.BatchSize)
	if err != nil {
		d.logger.Error("failed to list due outbox events", zap.Error(err))
		return
	}

	for _, e := range events {
		d.dispatchOne(ctx, e)
	}
}

func (d *Dispatcher) dispatchOne(ctx context.Context, e *Event) {
	handler, ok := d.handlers[e.Kind]
	if !ok {
		d.logger.Error("unknown outbox event kind",
			zap.String("event_id", e.ID),
			zap.String("kind", e.Kind),
		)
		if err := d.repo.MarkFailed(ctx, e.ID, ErrUnknownKind.Error()); err != nil {
			d.logger.Error("failed to mark outbox event failed", zap.Error(err))
		}
		return
	}

	err := handler(ctx, e.Payload)
	if err == nil {
		if err := d.repo.MarkDone(ctx, e.ID); err != nil {
			d.logger.Error("failed to mark outbox event done", zap.Error(err))
		}
		return
	}

	attempts := e.Attempts + 1

	if retry.IsPermanent(err) || d.config.Retry.Exhausted(attempts) {
		d.logger.Error("outbox event failed permanently",
			zap.String("event_id", e.ID),
			zap.String("kind", e.Kind),
			zap.Int("attempts", attempts),
			zap.Error(err),
		)
		if err := d.repo.MarkFailed(ctx, e.ID, err.Error()); err != nil {
			d.logger.Error("failed to mark outbox event failed", zap.Error(err))
		}
		return
	}

	next := time.Now().UTC().Add(d.config.Retry.Backoff(attempts))
	d.logger.Warn("outbox event delivery failed, rescheduling",
		zap.String("event_id", e.ID),
		zap.String("kind", e.Kind),
		zap.Int("attempts", attempts),
		zap.Time("next_attempt_at", next),
		zap.Error(err),
	)
	if err := d.repo.Reschedule(ctx, e.ID, attempts, err.Error(), next); err != nil {
		d.logger.Error("failed to reschedule outbox event", zap.Error(err))
	}
}
