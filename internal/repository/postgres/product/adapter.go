package postgres

import (
	"context"

	productuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/product"
)

type ProductStoreAdapter struct {
	repo *ProductRepo
}

func NewProductStoreAdapter(repo *ProductRepo) *ProductStoreAdapter {
	return &ProductStoreAdapter{repo: repo}
}

func (a *ProductStoreAdapter) FindByID(ctx context.Context, id string) (*productuc.Product, error) {
	row, err := a.repo.FindByID(ctx, id)
	if err != nil || row == nil {
		return nil, err
	}
	return mapProductRowToUC(row), nil
}

func (a *ProductStoreAdapter) ListAvailable(ctx context.Context) ([]productuc.Product, error) {
	rows, err := a.repo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]productuc.Product, 0, len(rows))
	for i := range rows {
		out = append(out, *mapProductRowToUC(&rows[i]))
	}
	return out, nil
}

func (a *ProductStoreAdapter) DecrementStock(ctx context.Context, id string, qty int) (bool, error) {
	return a.repo.DecrementStock(ctx, id, qty)
}

func mapProductRowToUC(r *ProductRow) *productuc.Product {
	p := &productuc.Product{
		ID:    r.ID,
		Name:  r.Name,
		Price: r.Price,
		Stock: r.Stock,
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.ImageURL != nil {
		p.ImageURL = *r.ImageURL
	}
	return p
}

// Compile-time check: ensures adapter matches usecase interface
var _ productuc.Store = (*ProductStoreAdapter)(nil)
