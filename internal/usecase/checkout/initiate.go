package checkout

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	productuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/product"
)

// Fixed fees in minor currency units, added on top of the item subtotal.
const (
	ShippingCost int64 = 500000
	BaseFee      int64 = 100000

	Currency = "COP"
)

type CheckoutItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CustomerInput struct {
	Email       string `json:"email"`
	FullName    string `json:"fullName"`
	PhoneNumber string `json:"phoneNumber"`
}

type DeliveryInput struct {
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type InitiateInput struct {
	Items    []CheckoutItem `json:"items"`
	Customer CustomerInput  `json:"customer"`
	Delivery DeliveryInput  `json:"delivery"`
}

type InitiateUsecase struct {
	products     productuc.Store
	transactions TransactionStore
	customers    CustomerStore
	deliveries   DeliveryStore
	log          *zap.Logger
}

func NewInitiate(
	products productuc.Store,
	transactions TransactionStore,
	customers CustomerStore,
	deliveries DeliveryStore,
	log *zap.Logger,
) *InitiateUsecase {
	return &InitiateUsecase{
		products:     products,
		transactions: transactions,
		customers:    customers,
		deliveries:   deliveries,
		log:          log,
	}
}

// Execute validates every requested item before any write: a later item
// failing the stock check must not leave a partial Customer/Delivery behind.
// Stock is checked but not decremented; the decrement happens only on a
// confirmed payment.
func (u *InitiateUsecase) Execute(ctx context.Context, in InitiateInput) (*Transaction, error) {
	if err := validateInitiateInput(in); err != nil {
		return nil, err
	}

	u.log.Info("initiating checkout", zap.String("customer_email", in.Customer.Email))

	items := make([]TransactionItem, 0, len(in.Items))
	for _, it := range in.Items {
		p, err := u.products.FindByID(ctx, it.ProductID)
		if err != nil {
			u.log.Error("product lookup failed", zap.String("product_id", it.ProductID), zap.Error(err))
			return nil, newError(CodeInternalError, "unexpected error: %v", err)
		}
		if p == nil {
			return nil, newError(CodeProductNotFound, "product %s not found", it.ProductID)
		}
		if p.Stock < it.Quantity {
			return nil, newError(CodeInsufficientStock, "insufficient stock for product %s", p.Name)
		}

		items = append(items, TransactionItem{
			ProductID: p.ID,
			Quantity:  it.Quantity,
			UnitPrice: p.Price * 100, // major units -> cents
		})
	}

	customer := &Customer{
		ID:          uuid.NewString(),
		Email:       in.Customer.Email,
		FullName:    in.Customer.FullName,
		PhoneNumber: in.Customer.PhoneNumber,
	}
	if err := u.customers.Create(ctx, customer); err != nil {
		u.log.Error("customer create failed", zap.Error(err))
		return nil, newError(CodeInternalError, "unexpected error: %v", err)
	}

	delivery := &Delivery{
		ID:      uuid.NewString(),
		Address: in.Delivery.Address,
		City:    in.Delivery.City,
		Country: in.Delivery.Country,
	}
	if err := u.deliveries.Create(ctx, delivery); err != nil {
		u.log.Error("delivery create failed", zap.Error(err))
		return nil, newError(CodeInternalError, "unexpected error: %v", err)
	}

	trx, err := NewTransaction(uuid.NewString(), customer.ID, delivery.ID, items, ShippingCost, BaseFee)
	if err != nil {
		return nil, newError(CodeValidation, "%v", err)
	}
	if err := u.transactions.Create(ctx, trx); err != nil {
		u.log.Error("transaction create failed", zap.Error(err))
		return nil, newError(CodeInternalError, "unexpected error: %v", err)
	}

	u.log.Info("checkout initiated",
		zap.String("transaction_id", trx.ID),
		zap.Int64("total_amount", trx.TotalAmount))
	return trx, nil
}

func validateInitiateInput(in InitiateInput) *Error {
	if len(in.Items) == 0 {
		return newError(CodeValidation, "items must not be empty")
	}
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return newError(CodeValidation, "each item needs a productId and a positive quantity")
		}
	}
	if in.Customer.Email == "" || in.Customer.FullName == "" {
		return newError(CodeValidation, "customer email and fullName are required")
	}
	if in.Delivery.Address == "" || in.Delivery.City == "" || in.Delivery.Country == "" {
		return newError(CodeValidation, "delivery address, city and country are required")
	}
	return nil
}
