package postgres

import (
	"context"

	checkoutuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/checkout"
)

type CustomerStoreAdapter struct {
	repo *CustomerRepo
}

func NewCustomerStoreAdapter(repo *CustomerRepo) *CustomerStoreAdapter {
	return &CustomerStoreAdapter{repo: repo}
}

func (a *CustomerStoreAdapter) Create(ctx context.Context, c *checkoutuc.Customer) error {
	_, err := a.repo.Create(ctx, c.ID, c.Email, c.FullName, c.PhoneNumber)
	return err
}

func (a *CustomerStoreAdapter) FindByID(ctx context.Context, id string) (*checkoutuc.Customer, error) {
	row, err := a.repo.FindByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	return &checkoutuc.Customer{
		ID:          row.ID,
		Email:       row.Email,
		FullName:    row.FullName,
		PhoneNumber: row.PhoneNumber,
	}, nil
}

// Compile-time check: ensures adapter matches usecase interface
var _ checkoutuc.CustomerStore = (*CustomerStoreAdapter)(nil)
