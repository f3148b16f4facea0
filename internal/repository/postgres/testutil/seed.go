package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func MustInsertProduct(t *testing.T, db *pgxpool.Pool, name string, price int64, stock int) string {
	t.Helper()

	var id string
	err := db.QueryRow(context.Background(), `
		INSERT INTO products (name, description, price, stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id::text
	`, name, "seeded for tests", price, stock).Scan(&id)

	require.NoError(t, err)
	require.NotEmpty(t, id)
	return id
}

func MustInsertCustomer(t *testing.T, db *pgxpool.Pool, fullName, email string) string {
	t.Helper()

	uniq := fmt.Sprintf("%d", time.Now().UnixNano())
	emailUniq := fmt.Sprintf("%s.%s", uniq, email)

	id := uuid.NewString()
	_, err := db.Exec(context.Background(), `
		INSERT INTO customers (id, email, full_name, phone_number)
		VALUES ($1::uuid, $2, $3, $4)
	`, id, emailUniq, fullName, "3001234567")

	require.NoError(t, err)
	return id
}

func MustInsertDelivery(t *testing.T, db *pgxpool.Pool, address, city string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(context.Background(), `
		INSERT INTO deliveries (id, address, city, country)
		VALUES ($1::uuid, $2, $3, $4)
	`, id, address, city, "CO")

	require.NoError(t, err)
	return id
}
