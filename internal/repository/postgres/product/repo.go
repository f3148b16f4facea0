package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRow struct {
	ID          string
	Name        string
	Description *string
	Price       int64
	Stock       int
	ImageURL    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProductRepo struct {
	db *pgxpool.Pool
}

func NewProductRepo(db *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) FindByID(ctx context.Context, id string) (*ProductRow, error) {
	const q = `
SELECT id::text, name, description, price, stock, image_url, created_at, updated_at
FROM products
WHERE id = $1::uuid;
`
	row := r.db.QueryRow(ctx, q, id)

	var out ProductRow
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Description,
		&out.Price,
		&out.Stock,
		&out.ImageURL,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}

func (r *ProductRepo) ListAvailable(ctx context.Context) ([]ProductRow, error) {
	const q = `
SELECT id::text, name, description, price, stock, image_url, created_at, updated_at
FROM products
WHERE stock > 0
ORDER BY name;
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ProductRow, 0, 20)
	for rows.Next() {
		var p ProductRow
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Stock,
			&p.ImageURL,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// DecrementStock is a guarded single-row update: it applies only when the
// product exists and has at least qty on hand, so stock never goes negative.
func (r *ProductRepo) DecrementStock(ctx context.Context, id string, qty int) (bool, error) {
	const q = `
UPDATE products
SET stock = stock - $2,
    updated_at = now()
WHERE id = $1::uuid
  AND stock >= $2;
`
	cmd, err := r.db.Exec(ctx, q, id, qty)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
