package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRow struct {
	ID                   string
	CustomerID           string
	DeliveryID           string
	TotalAmount          int64
	ShippingCost         int64
	BaseFee              int64
	Status               string
	GatewayTransactionID *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type TransactionItemRow struct {
	TransactionID string
	ProductID     string
	Quantity      int
	UnitPrice     int64
}

type TransactionRepo struct {
	db *pgxpool.Pool
}

func NewTransactionRepo(db *pgxpool.Pool) *TransactionRepo {
	return &TransactionRepo{db: db}
}

// Create inserts the transaction header and its items in one DB tx.
func (r *TransactionRepo) Create(ctx context.Context, row TransactionRow, items []TransactionItemRow) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const qHeader = `
INSERT INTO transactions (id, customer_id, delivery_id, total_amount, shipping_cost, base_fee, status, created_at, updated_at)
VALUES ($1::uuid, $2::uuid, $3::uuid, $4, $5, $6, $7, $8, $9);
`
	if _, err := tx.Exec(ctx, qHeader,
		row.ID, row.CustomerID, row.DeliveryID,
		row.TotalAmount, row.ShippingCost, row.BaseFee,
		row.Status, row.CreatedAt, row.UpdatedAt,
	); err != nil {
		return err
	}

	const qItem = `
INSERT INTO transaction_items (transaction_id, product_id, quantity, unit_price)
VALUES ($1::uuid, $2::uuid, $3, $4);
`
	for _, it := range items {
		if _, err := tx.Exec(ctx, qItem, row.ID, it.ProductID, it.Quantity, it.UnitPrice); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *TransactionRepo) FindByID(ctx context.Context, id string) (*TransactionRow, []TransactionItemRow, error) {
	const qHeader = `
SELECT id::text, customer_id::text, delivery_id::text,
       total_amount, shipping_cost, base_fee,
       status, gateway_transaction_id, created_at, updated_at
FROM transactions
WHERE id = $1::uuid;
`
	var out TransactionRow
	if err := r.db.QueryRow(ctx, qHeader, id).Scan(
		&out.ID,
		&out.CustomerID,
		&out.DeliveryID,
		&out.TotalAmount,
		&out.ShippingCost,
		&out.BaseFee,
		&out.Status,
		&out.GatewayTransactionID,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	const qItems = `
SELECT transaction_id::text, product_id::text, quantity, unit_price
FROM transaction_items
WHERE transaction_id = $1::uuid
ORDER BY created_at;
`
	rows, err := r.db.Query(ctx, qItems, id)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	items := make([]TransactionItemRow, 0, 4)
	for rows.Next() {
		var it TransactionItemRow
		if err := rows.Scan(&it.TransactionID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	return &out, items, nil
}

// UpdateStatus is the storage-level compare-and-swap: the row only moves to
// the target status while its stored status still permits the transition.
// A lost race reports zero rows affected, not an error.
func (r *TransactionRepo) UpdateStatus(ctx context.Context, id, status, gatewayID string) (bool, error) {
	const qFinal = `
UPDATE transactions
SET status = $2,
    gateway_transaction_id = COALESCE(NULLIF($3, ''), gateway_transaction_id),
    updated_at = now()
WHERE id = $1::uuid
  AND status IN ('PENDING', 'PROCESSING');
`
	const qProcessing = `
UPDATE transactions
SET status = $2,
    gateway_transaction_id = COALESCE(NULLIF($3, ''), gateway_transaction_id),
    updated_at = now()
WHERE id = $1::uuid
  AND status = 'PENDING';
`
	q := qFinal
	if status == "PROCESSING" {
		q = qProcessing
	}

	cmd, err := r.db.Exec(ctx, q, id, status, gatewayID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
