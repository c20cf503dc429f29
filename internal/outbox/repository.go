package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Enqueue serializes the payload and records a pending event.
	Enqueue(ctx context.Context, kind string, payload any) error

	// ListDue returns pending events whose next attempt is due, oldest first.
	ListDue(ctx context.Context, now time.Time, limit int) ([]*Event, error)

	MarkDone(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, lastError string) error
	Reschedule(ctx context.Context, id string, attempts int, lastError string, nextAttemptAt time.Time) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Enqueue(ctx context.Context, kind string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal outbox payload failed: %w", err)
	}

	const query = `
		INSERT INTO public.outbox_events (kind, payload, status, next_attempt_at)
		VALUES ($1, $2, 'pending', now())
	`
	if _, err := r.pool.Exec(ctx, query, kind, body); err != nil {
		return fmt.Errorf("enqueue outbox event failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]*Event, error) {
	const query = `
		SELECT id, kind, payload, status, attempts, last_error, next_attempt_at, created_at, updated_at
		FROM public.outbox_events
		WHERE status = 'pending' AND next_attempt_at <= $1
		ORDER BY next_attempt_at ASC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("list due outbox events failed: %w", err)
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(
			&e.ID, &e.Kind, &e.Payload, &e.Status, &e.Attempts,
			&e.LastError, &e.NextAttemptAt, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan outbox event failed: %w", err)
		}
		events = append(events, &e)
	}

	return events, nil
}

func (r *pgxRepository) MarkDone(ctx context.Context, id string) error {
	const query = `
		UPDATE public.outbox_events
		SET status = 'done', updated_at = now()
		WHERE id = $1
	`
	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("mark outbox event done failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) MarkFailed(ctx context.Context, id string, lastError string) error {
	const query = `
		UPDATE public.outbox_events
		SET status = 'failed', last_error = $2, updated_at = now()
		WHERE id = $1
	`
	if _, err := r.pool.Exec(ctx, query, id, lastError); err != nil {
		return fmt.Errorf("mark outbox event failed failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Reschedule(ctx context.Context, id string, attempts int, lastError string, nextAttemptAt time.Time) error {
	const query = `
		UPDATE public.outbox_events
		SET attempts = $2, last_error = $3, next_attempt_at = $4, updated_at = now()
		WHERE id = $1
	`
	if _, err := r.pool.Exec(ctx, query, id, attempts, lastError, nextAttemptAt); err != nil {
		return fmt.Errorf("reschedule outbox event failed: %w", err)
	}
	return nil
}
