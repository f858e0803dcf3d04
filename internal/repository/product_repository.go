package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sweetrecords/storefront/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, name, price, description, imageURL string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productRepository struct {
	pool         *pgxpool.Pool
	queryTimeout time.Duration
}

func NewProductRepository(pool *pgxpool.Pool, queryTimeout time.Duration) ProductRepository {
	return &productRepository{pool: pool, queryTimeout: queryTimeout}
}

const productCols = `id, name, price, description, image_url, created_at`

func (r *productRepository) Create(ctx context.Context, name, price, description, imageURL string) (*domain.Product, error) {
	const q = `
		INSERT INTO products (name, price, description, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + productCols

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var p domain.Product
	err := r.pool.QueryRow(ctx, q, name, price, description, imageURL).Scan(
		&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt,
	)
	if err != nil {
		return nil, storeErr(err)
	}

	return &p, nil
}

func (r *productRepository) List(ctx context.Context) ([]domain.Product, error) {
	const q = `SELECT ` + productCols + ` FROM products ORDER BY created_at DESC`

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, storeErr(err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, storeErr(err)
		}
		products = append(products, p)
	}

	return products, storeErr(rows.Err())
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM products WHERE id = $1`

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	result, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		return storeErr(err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
	}

	return nil
}
