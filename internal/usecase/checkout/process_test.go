package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	productuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/product"
)

func processFixture(t *testing.T) (*fakeTransactionStore, *fakeCustomerStore, *fakeDeliveryStore, *fakeProductStore, *Transaction) {
	t.Helper()

	trx, err := NewTransaction("trx-1", "cust-1", "del-1", []TransactionItem{
		{ProductID: "p1", Quantity: 2, UnitPrice: 50000},
	}, ShippingCost, BaseFee)
	require.NoError(t, err)

	transactions := newFakeTransactionStore(trx)
	customers := newFakeCustomerStore(&Customer{
		ID: "cust-1", Email: "ana@example.com", FullName: "Ana Gómez", PhoneNumber: "+573001112233",
	})
	deliveries := newFakeDeliveryStore(&Delivery{
		ID: "del-1", Address: "Calle 10 # 43-12", City: "Medellín", Country: "CO",
	})
	products := newFakeProductStore(&productuc.Product{ID: "p1", Name: "Camiseta", Price: 500, Stock: 5})

	return transactions, customers, deliveries, products, trx
}

func cardInput() ProcessInput {
	return ProcessInput{PaymentMethod: PaymentMethod{Type: "CARD", Token: "tok_test", Installments: 1}}
}

func TestProcess_TransactionNotFound(t *testing.T) {
	transactions, customers, deliveries, products, _ := processFixture(t)
	gw := &fakeGateway{}
	uc := NewProcess(transactions, customers, deliveries, products, gw, zap.NewNop())

	_, err := uc.Execute(context.Background(), "missing", cardInput())

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, CodeTransactionNotFound, cerr.Code)
	require.Zero(t, gw.calls)
}

func TestProcess_NotPending_GatewayNotCalled(t *testing.T) {
	transactions, customers, deliveries, products, trx := processFixture(t)
	transactions.transactions[trx.ID].Approve("wompi-0")
	gw := &fakeGateway{}
	uc := NewProcess(transactions, customers, deliveries, products, gw, zap.NewNop())

	_, err := uc.Execute(context.Background(), trx.ID, cardInput())

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, CodeInvalidStatus, cerr.Code)
	require.Zero(t, gw.calls)
}

func TestProcess_MissingCustomerData(t *testing.T) {
	transactions, _, deliveries, products, trx := processFixture(t)
	gw := &fakeGateway{}
	uc := NewProcess(transactions, newFakeCustomerStore(), deliveries, products, gw, zap.NewNop())

	_, err := uc.Execute(context.Background(), trx.ID, cardInput())

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, CodeDataNotFound, cerr.Code)
	require.Zero(t, gw.calls)
}

func TestProcess_GatewayFailure_MarksError(t *testing.T) {
	transactions, customers, deliveries, products, trx := processFixture(t)
	gw := &fakeGateway{err: &gatewayStub{"wompi api error (422): amount too low"}}
	uc := NewProcess(transactions, customers, deliveries, products, gw, zap.NewNop())

	_, err := uc.Execute(context.Background(), trx.ID, cardInput())

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	require.Equal(t, CodeGatewayError, cerr.Code)
	require.Contains(t, cerr.Message, "amount too low")
	require.Equal(t, StatusError, transactions.transactions[trx.ID].Status)
}

func TestProcess_Approved_UpdatesAndDecrementsStock(t *testing.T) {
	transactions, customers, deliveries, products, trx := processFixture(t)
	gw := &fakeGateway{out: &CreatePaymentOutput{GatewayTransactionID: "wompi-1", Status: "APPROVED"}}
	uc := NewProcess(transactions, customers, deliveries, products, gw, zap.NewNop())

	out, err := uc.Execute(context.Background(), trx.ID, cardInput())
	require.NoError(t, err)
	require.Equal(t, StatusApproved, out.Status)
	require.Equal(t, "wompi-1", out.GatewayTransactionID)

	// gateway request carries the transaction total and reference
	require.Equal(t, trx.TotalAmount, gw.lastInput.AmountInCents)
	require.Equal(t, Currency, gw.lastInput.Currency)
	require.Equal(t, trx.ID, gw.lastInput.Reference)

	require.Len(t, products.decrements, 1)
	require.Equal(t, 3, products.products["p1"].Stock)
}

func TestProcess_GatewayPending_MarksProcessing(t *testing.T) {
	transactions, customers, deliveries, products, trx := processFixture(t)
	gw := &fakeGateway{out: &CreatePaymentOutput{GatewayTransactionID: "wompi-1", Status: "PENDING"}}
	uc := NewProcess(transactions, customers, deliveries, products, gw, zap.NewNop())

	out, err := uc.Execute(context.Background(), trx.ID, cardInput())
	require.NoError(t, err)
	require.Equal(t, StatusProcessing, out.Status)
	require.Empty(t, products.decrements)
}

func TestProcess_LostRace_ReturnsStoredState(t *testing.T) {
	transactions, customers, deliveries, products, trx := processFixture(t)
	gw := &fakeGateway{out: &CreatePaymentOutput{GatewayTransactionID: "wompi-1", Status: "APPROVED"}}
	uc := NewProcess(transactions, customers, deliveries, products, gw, zap.NewNop())

	// a webhook finalizes the transaction between the load and the update
	transactions.beforeUpdate = func() {
		transactions.transactions[trx.ID].Decline("wompi-2")
	}

	out, err := uc.Execute(context.Background(), trx.ID, cardInput())
	require.NoError(t, err)
	require.Equal(t, StatusDeclined, out.Status)
	// losing the conditional update means no stock side effect
	require.Empty(t, products.decrements)
}

type gatewayStub struct{ msg string }

func (e *gatewayStub) Error() string { return e.msg }
