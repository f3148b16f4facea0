package product

import (
	"context"
)

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"` // major currency units
	Stock       int    `json:"stock"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type Store interface {
	// FindByID returns (nil, nil) when the product does not exist.
	FindByID(ctx context.Context, id string) (*Product, error)

	ListAvailable(ctx context.Context) ([]Product, error)

	// DecrementStock subtracts qty from the product's stock. Returns
	// (false, nil) when the product is missing or its stock is short; the
	// stored stock never goes negative.
	DecrementStock(ctx context.Context, id string, qty int) (bool, error)
}

type Usecase struct {
	store Store
}

func New(store Store) *Usecase {
	return &Usecase{store: store}
}

// ListAvailable returns products with stock on hand.
func (u *Usecase) ListAvailable(ctx context.Context) ([]Product, error) {
	return u.store.ListAvailable(ctx)
}
