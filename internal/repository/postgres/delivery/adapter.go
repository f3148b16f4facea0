package postgres

import (
	"context"

	checkoutuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/checkout"
)

type DeliveryStoreAdapter struct {
	repo *DeliveryRepo
}

func NewDeliveryStoreAdapter(repo *DeliveryRepo) *DeliveryStoreAdapter {
	return &DeliveryStoreAdapter{repo: repo}
}

func (a *DeliveryStoreAdapter) Create(ctx context.Context, d *checkoutuc.Delivery) error {
	_, err := a.repo.Create(ctx, d.ID, d.Address, d.City, d.Country)
	return err
}

func (a *DeliveryStoreAdapter) FindByID(ctx context.Context, id string) (*checkoutuc.Delivery, error) {
	row, err := a.repo.FindByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	return &checkoutuc.Delivery{
		ID:      row.ID,
		Address: row.Address,
		City:    row.City,
		Country: row.Country,
	}, nil
}

// Compile-time check: ensures adapter matches usecase interface
var _ checkoutuc.DeliveryStore = (*DeliveryStoreAdapter)(nil)
