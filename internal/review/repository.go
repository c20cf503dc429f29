package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, rv *Review) error
	GetByID(ctx context.Context, id string) (*Review, error)
	List(ctx context.Context, filter Filter) ([]*Review, int, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, rv *Review) error {
	const query = `
		INSERT INTO public.reviews (room_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, rv.RoomID, rv.UserID, rv.Rating, rv.Comment).
		Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		return fmt.Errorf("create review failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Review, error) {
	const query = `
		SELECT rv.id, rv.room_id, rv.user_id, COALESCE(u.display_name, u.email), rv.rating, rv.comment, rv.created_at
		FROM public.reviews rv
		JOIN public.users u ON rv.user_id = u.id
		WHERE rv.id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var rv Review
	if err := row.Scan(
		&rv.ID, &rv.RoomID, &rv.UserID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review failed: %w", err)
	}
	return &rv, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Review, int, error) {
	var args []any
	queryBase := `
		SELECT rv.id, rv.room_id, rv.user_id, COALESCE(u.display_name, u.email), rv.rating, rv.comment, rv.created_at,
			count(*) OVER() as total_count
		FROM public.reviews rv
		JOIN public.users u ON rv.user_id = u.id
		WHERE 1=1
	`
	paramIndex := 1

	if filter.RoomID != "" {
		queryBase += fmt.Sprintf(" AND rv.room_id = $%d", paramIndex)
		args = append(args, filter.RoomID)
		paramIndex++
	}
	if filter.UserID != "" {
		queryBase += fmt.Sprintf(" AND rv.user_id = $%d", paramIndex)
		args = append(args, filter.UserID)
		paramIndex++
	}

	queryBase += " ORDER BY rv.created_at DESC"

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	queryBase += fmt.Sprintf(" LIMIT $%d OFFSET $%d", paramIndex, paramIndex+1)
	args = append(args, filter.PageSize, offset)

	rows, err := r.pool.Query(ctx, queryBase, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reviews failed: %w", err)
	}
	defer rows.Close()

	var reviews []*Review
	var total int

	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID, &rv.RoomID, &rv.UserID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan review failed: %w", err)
		}
		reviews = append(reviews, &rv)
	}

	return reviews, total, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.reviews WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete review failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
