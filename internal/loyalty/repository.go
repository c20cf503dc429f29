package loyalty

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Credit inserts the entry and increments the user's balance in one transaction.
	Credit(ctx context.Context, e *Entry) error
	Balance(ctx context.Context, userID string) (int, error)
	List(ctx context.Context, userID string, page, pageSize int) ([]*Entry, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Credit(ctx context.Context, e *Entry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin loyalty credit failed: %w", err)
	}
	defer tx.Rollback(ctx)

	const insertEntry = `
		INSERT INTO public.loyalty_entries (user_id, points, reason, booking_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	if err := tx.QueryRow(ctx, insertEntry, e.UserID, e.Points, e.Reason, e.BookingID).
		Scan(&e.ID, &e.CreatedAt); err != nil {
		return fmt.Errorf("insert loyalty entry failed: %w", err)
	}

	const bumpBalance = `
		UPDATE public.users
		SET loyalty_points = loyalty_points + $1
		WHERE id = $2
	`
	ct, err := tx.Exec(ctx, bumpBalance, e.Points, e.UserID)
	if err != nil {
		return fmt.Errorf("update loyalty balance failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) Balance(ctx context.Context, userID string) (int, error) {
	const query = `SELECT loyalty_points FROM public.users WHERE id = $1`

	var balance int
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("get loyalty balance failed: %w", err)
	}
	return balance, nil
}

func (r *pgxRepository) List(ctx context.Context, userID string, page, pageSize int) ([]*Entry, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	const query = `
		SELECT id, user_id, points, reason, booking_id, created_at, count(*) OVER() AS total_count
		FROM public.loyalty_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list loyalty entries failed: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	var total int

	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Points, &e.Reason, &e.BookingID, &e.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan loyalty entry failed: %w", err)
		}
		entries = append(entries, &e)
	}

	return entries, total, nil
}
