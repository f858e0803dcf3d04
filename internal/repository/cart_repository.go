package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sweetrecords/storefront/internal/domain"
)

type CartRepository interface {
	Add(ctx context.Context, userID, productID int64) (*domain.CartEntry, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.CartEntry, error)
	Remove(ctx context.Context, userID, productID int64) error
}

type cartRepository struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

func NewCartRepository(pool *pgxpool.Pool, queryTimeout time.Duration) CartRepository {
	return &cartRepository{pool: pool, queryTimeout: queryTimeout}
}

func (r *cartRepository) Add(ctx context.Context, userID, productID int64) (*domain.CartEntry, error) {
	const q = `
		INSERT INTO cart_items (user_id, product_id)
		VALUES ($1, $2)
		RETURNING id, user_id, product_id, created_at`

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var e domain.CartEntry
	err := r.pool.QueryRow(ctx, q, userID, productID).Scan(
		&e.ID, &e.UserID, &e.ProductID, &e.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: product %d", domain.ErrDuplicate, productID)
		}
		return nil, storeErr(err)
	}

	return &e, nil
}

func (r *cartRepository) ListByUser(ctx context.Context, userID int64) ([]domain.CartEntry, error) {
	const q = `
		SELECT id, user_id, product_id, created_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY id`

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	entries := []domain.CartEntry{}
	for rows.Next() {
		var e domain.CartEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ProductID, &e.CreatedAt); err != nil {
			return nil, storeErr(err)
		}
		entries = append(entries, e)
	}

	return entries, storeErr(rows.Err())
}

func (r *cartRepository) Remove(ctx context.Context, userID, productID int64) error {
	const q = `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, userID, productID)
	if err != nil {
		return storeErr(err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, productID)
	}

	return nil
}
