package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DeliveryRow struct {
	ID        string
	Address   string
	City      string
	Country   string
	CreatedAt time.Time
}

type DeliveryRepo struct {
	db *pgxpool.Pool
}

func NewDeliveryRepo(db *pgxpool.Pool) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

func (r *DeliveryRepo) Create(ctx context.Context, id, address, city, country string) (*DeliveryRow, error) {
	const q = `
INSERT INTO deliveries (id, address, city, country)
VALUES ($1::uuid, $2, $3, $4)
RETURNING id::text, address, city, country, created_at;
`
	row := r.db.QueryRow(ctx, q, id, address, city, country)

	var out DeliveryRow
	if err := row.Scan(&out.ID, &out.Address, &out.City, &out.Country, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *DeliveryRepo) FindByID(ctx context.Context, id string) (*DeliveryRow, error) {
	const q = `
SELECT id::text, address, city, country, created_at
FROM deliveries
WHERE id = $1::uuid;
`
	row := r.db.QueryRow(ctx, q, id)

	var out DeliveryRow
	if err := row.Scan(&out.ID, &out.Address, &out.City, &out.Country, &out.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}
