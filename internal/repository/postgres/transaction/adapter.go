package postgres

import (
	"context"

	checkoutuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/checkout"
)

type TransactionStoreAdapter struct {
	repo *TransactionRepo
}

func NewTransactionStoreAdapter(repo *TransactionRepo) *TransactionStoreAdapter {
	return &TransactionStoreAdapter{repo: repo}
}

func (a *TransactionStoreAdapter) Create(ctx context.Context, trx *checkoutuc.Transaction) error {
	row := TransactionRow{
		ID:           trx.ID,
		CustomerID:   trx.CustomerID,
		DeliveryID:   trx.DeliveryID,
		TotalAmount:  trx.TotalAmount,
		ShippingCost: trx.ShippingCost,
		BaseFee:      trx.BaseFee,
		Status:       string(trx.Status),
		CreatedAt:    trx.CreatedAt,
		UpdatedAt:    trx.UpdatedAt,
	}

	items := make([]TransactionItemRow, 0, len(trx.Items))
	for _, it := range trx.Items {
		items = append(items, TransactionItemRow{
			TransactionID: trx.ID,
			ProductID:     it.ProductID,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
		})
	}

	return a.repo.Create(ctx, row, items)
}

func (a *TransactionStoreAdapter) FindByID(ctx context.Context, id string) (*checkoutuc.Transaction, error) {
	row, items, err := a.repo.FindByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	return mapTransactionRowToUC(row, items), nil
}

func (a *TransactionStoreAdapter) UpdateStatus(ctx context.Context, id string, status checkoutuc.Status, gatewayID string) (bool, error) {
	return a.repo.UpdateStatus(ctx, id, string(status), gatewayID)
}

func mapTransactionRowToUC(row *TransactionRow, items []TransactionItemRow) *checkoutuc.Transaction {
	out := &checkoutuc.Transaction{
		ID:           row.ID,
		CustomerID:   row.CustomerID,
		DeliveryID:   row.DeliveryID,
		TotalAmount:  row.TotalAmount,
		ShippingCost: row.ShippingCost,
		BaseFee:      row.BaseFee,
		Status:       checkoutuc.Status(row.Status),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.GatewayTransactionID != nil {
		out.GatewayTransactionID = *row.GatewayTransactionID
	}
	for _, it := range items {
		out.Items = append(out.Items, checkoutuc.TransactionItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return out
}

// Compile-time check: ensures adapter matches usecase interface
var _ checkoutuc.TransactionStore = (*TransactionStoreAdapter)(nil)
