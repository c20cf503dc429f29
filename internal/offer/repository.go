package offer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, o *Offer) error
	GetByID(ctx context.Context, id string) (*Offer, error)
	List(ctx context.Context, filter Filter) ([]*Offer, int, error)
	Update(ctx context.Context, o *Offer) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, o *Offer) error {
	const query = `
		INSERT INTO public.offers (title, description, discount_percent, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, o.Title, o.Description, o.DiscountPercent, o.IsActive).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create offer failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Offer, error) {
	const query = `
		SELECT id, title, description, discount_percent, is_active, created_at, updated_at
		FROM public.offers
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var o Offer
	if err := row.Scan(
		&o.ID, &o.Title, &o.Description, &o.DiscountPercent, &o.IsActive, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get offer failed: %w", err)
	}
	return &o, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Offer, int, error) {
	var args []any
	queryBase := `
		SELECT id, title, description, discount_percent, is_active, created_at, updated_at,
			count(*) OVER() as total_count
		FROM public.offers
		WHERE 1=1
	`

	if filter.ActiveOnly {
		queryBase += " AND is_active = true"
	}

	queryBase += " ORDER BY created_at DESC"

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	queryBase += " LIMIT $1 OFFSET $2"
	args = append(args, filter.PageSize, offset)

	rows, err := r.pool.Query(ctx, queryBase, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list offers failed: %w", err)
	}
	defer rows.Close()

	var offers []*Offer
	var total int

	for rows.Next() {
		var o Offer
		if err := rows.Scan(
			&o.ID, &o.Title, &o.Description, &o.DiscountPercent, &o.IsActive,
			&o.CreatedAt, &o.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan offer failed: %w", err)
		}
		offers = append(offers, &o)
	}

	return offers, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, o *Offer) error {
	const query = `
		UPDATE public.offers
		SET title = $1, description = $2, discount_percent = $3, is_active = $4, updated_at = now()
		WHERE id = $5
	`
	ct, err := r.pool.Exec(ctx, query, o.Title, o.Description, o.DiscountPercent, o.IsActive, o.ID)
	if err != nil {
		return fmt.Errorf("update offer failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.offers WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete offer failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
