package checkout

import (
	"context"

	productuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/product"
)

// In-memory fakes that mirror the store contracts, including the
// conditional-update semantics of TransactionStore.UpdateStatus.

type decrementCall struct {
	productID string
	qty       int
}

type fakeProductStore struct {
	products   map[string]*productuc.Product
	findErr    error
	decrements []decrementCall
}

func newFakeProductStore(products ...*productuc.Product) *fakeProductStore {
	f := &fakeProductStore{products: map[string]*productuc.Product{}}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductStore) FindByID(_ context.Context, id string) (*productuc.Product, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductStore) ListAvailable(_ context.Context) ([]productuc.Product, error) {
	out := make([]productuc.Product, 0, len(f.products))
	for _, p := range f.products {
		if p.Stock > 0 {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductStore) DecrementStock(_ context.Context, id string, qty int) (bool, error) {
	f.decrements = append(f.decrements, decrementCall{productID: id, qty: qty})
	p, ok := f.products[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

type statusUpdate struct {
	id        string
	status    Status
	gatewayID string
}

type fakeTransactionStore struct {
	transactions map[string]*Transaction
	createCalls  int
	updates      []statusUpdate
	findErr      error

	// beforeUpdate runs inside UpdateStatus before the condition check,
	// used to simulate a concurrent writer winning the race.
	beforeUpdate func()
}

func newFakeTransactionStore(trxs ...*Transaction) *fakeTransactionStore {
	f := &fakeTransactionStore{transactions: map[string]*Transaction{}}
	for _, trx := range trxs {
		f.transactions[trx.ID] = trx
	}
	return f
}

func (f *fakeTransactionStore) Create(_ context.Context, trx *Transaction) error {
	f.createCalls++
	cp := *trx
	f.transactions[trx.ID] = &cp
	return nil
}

func (f *fakeTransactionStore) FindByID(_ context.Context, id string) (*Transaction, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	trx, ok := f.transactions[id]
	if !ok {
		return nil, nil
	}
	cp := *trx
	return &cp, nil
}

func (f *fakeTransactionStore) UpdateStatus(_ context.Context, id string, status Status, gatewayID string) (bool, error) {
	if f.beforeUpdate != nil {
		f.beforeUpdate()
	}
	f.updates = append(f.updates, statusUpdate{id: id, status: status, gatewayID: gatewayID})

	trx, ok := f.transactions[id]
	if !ok {
		return false, nil
	}
	return trx.ApplyGatewayStatus(status, gatewayID), nil
}

type fakeCustomerStore struct {
	customers   map[string]*Customer
	createCalls int
}

func newFakeCustomerStore(customers ...*Customer) *fakeCustomerStore {
	f := &fakeCustomerStore{customers: map[string]*Customer{}}
	for _, c := range customers {
		f.customers[c.ID] = c
	}
	return f
}

func (f *fakeCustomerStore) Create(_ context.Context, c *Customer) error {
	f.createCalls++
	cp := *c
	f.customers[c.ID] = &cp
	return nil
}

func (f *fakeCustomerStore) FindByID(_ context.Context, id string) (*Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

type fakeDeliveryStore struct {
	deliveries  map[string]*Delivery
	createCalls int
}

func newFakeDeliveryStore(deliveries ...*Delivery) *fakeDeliveryStore {
	f := &fakeDeliveryStore{deliveries: map[string]*Delivery{}}
	for _, d := range deliveries {
		f.deliveries[d.ID] = d
	}
	return f
}

func (f *fakeDeliveryStore) Create(_ context.Context, d *Delivery) error {
	f.createCalls++
	cp := *d
	f.deliveries[d.ID] = &cp
	return nil
}

func (f *fakeDeliveryStore) FindByID(_ context.Context, id string) (*Delivery, error) {
	d, ok := f.deliveries[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

type fakeGateway struct {
	out       *CreatePaymentOutput
	err       error
	calls     int
	lastInput CreatePaymentInput
}

func (f *fakeGateway) CreatePayment(_ context.Context, in CreatePaymentInput) (*CreatePaymentOutput, error) {
	f.calls++
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakeGateway) GetPaymentStatus(_ context.Context, gatewayTransactionID string) (*PaymentStatusOutput, error) {
	return &PaymentStatusOutput{GatewayTransactionID: gatewayTransactionID, Status: f.out.Status}, nil
}
