package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRow struct {
	ID          string
	Email       string
	FullName    string
	PhoneNumber string
	CreatedAt   time.Time
}

type CustomerRepo struct {
	db *pgxpool.Pool
}

func NewCustomerRepo(db *pgxpool.Pool) *CustomerRepo {
	return &CustomerRepo{db: db}
}

func (r *CustomerRepo) Create(ctx context.Context, id, email, fullName, phoneNumber string) (*CustomerRow, error) {
	const q = `
INSERT INTO customers (id, email, full_name, phone_number)
VALUES ($1::uuid, $2, $3, $4)
RETURNING id::text, email, full_name, phone_number, created_at;
`
	row := r.db.QueryRow(ctx, q, id, email, fullName, phoneNumber)

	var out CustomerRow
	if err := row.Scan(&out.ID, &out.Email, &out.FullName, &out.PhoneNumber, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *CustomerRepo) FindByID(ctx context.Context, id string) (*CustomerRow, error) {
	const q = `
SELECT id::text, email, full_name, phone_number, created_at
FROM customers
WHERE id = $1::uuid;
`
	row := r.db.QueryRow(ctx, q, id)

	var out CustomerRow
	if err := row.Scan(&out.ID, &out.Email, &out.FullName, &out.PhoneNumber, &out.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}
