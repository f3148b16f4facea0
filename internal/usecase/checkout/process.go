package checkout

import (
	"context"

	"go.uber.org/zap"

	productuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/product"
)

type ProcessInput struct {
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

type ProcessUsecase struct {
	transactions TransactionStore
	customers    CustomerStore
	deliveries   DeliveryStore
	products     productuc.Store
	gateway      PaymentGateway
	log          *zap.Logger
}

func NewProcess(
	transactions TransactionStore,
	customers CustomerStore,
	deliveries DeliveryStore,
	products productuc.Store,
	gateway PaymentGateway,
	log *zap.Logger,
) *ProcessUsecase {
	return &ProcessUsecase{
		transactions: transactions,
		customers:    customers,
		deliveries:   deliveries,
		products:     products,
		gateway:      gateway,
		log:          log,
	}
}

// Execute submits a pending transaction to the payment gateway and applies
// the gateway-reported status. The status write is the conditional update
// from TransactionStore.UpdateStatus, so a webhook racing this call cannot
// be overwritten; whichever write lands first wins and the loser is a no-op.
func (u *ProcessUsecase) Execute(ctx context.Context, transactionID string, in ProcessInput) (*Transaction, error) {
	u.log.Info("processing payment", zap.String("transaction_id", transactionID))

	trx, err := u.transactions.FindByID(ctx, transactionID)
	if err != nil {
		u.log.Error("transaction lookup failed", zap.String("transaction_id", transactionID), zap.Error(err))
		return nil, newError(CodeInternalError, "unexpected error: %v", err)
	}
	if trx == nil {
		return nil, newError(CodeTransactionNotFound, "transaction %s not found", transactionID)
	}
	if trx.Status != StatusPending {
		return nil, newError(CodeInvalidStatus, "transaction %s is not PENDING", transactionID)
	}

	customer, err := u.customers.FindByID(ctx, trx.CustomerID)
	if err != nil {
		return nil, newError(CodeInternalError, "unexpected error: %v", err)
	}
	delivery, err := u.deliveries.FindByID(ctx, trx.DeliveryID)
	if err != nil {
		return nil, newError(CodeInternalError, "unexpected error: %v", err)
	}
	if customer == nil || delivery == nil {
		return nil, newError(CodeDataNotFound, "customer or delivery data missing for transaction %s", transactionID)
	}

	out, err := u.gateway.CreatePayment(ctx, CreatePaymentInput{
		AmountInCents: trx.TotalAmount,
		Currency:      Currency,
		CustomerEmail: customer.Email,
		PaymentMethod: in.PaymentMethod,
		Reference:     trx.ID,
		CustomerData: CustomerData{
			PhoneNumber: customer.PhoneNumber,
			FullName:    customer.FullName,
		},
		ShippingAddress: ShippingAddress{
			AddressLine1: delivery.Address,
			Country:      delivery.Country,
			Region:       delivery.City,
			City:         delivery.City,
			Name:         customer.FullName,
			PhoneNumber:  customer.PhoneNumber,
		},
	})
	if err != nil {
		u.log.Error("gateway payment failed", zap.String("transaction_id", trx.ID), zap.Error(err))
		if _, uerr := u.transactions.UpdateStatus(ctx, trx.ID, StatusError, ""); uerr != nil {
			u.log.Error("marking transaction ERROR failed", zap.String("transaction_id", trx.ID), zap.Error(uerr))
		}
		return nil, newError(CodeGatewayError, "%v", err)
	}

	status, ok := MapGatewayStatus(out.Status)
	if !ok {
		u.log.Warn("unrecognized gateway status",
			zap.String("transaction_id", trx.ID), zap.String("status", out.Status))
		status = StatusError
	}

	applied, err := u.transactions.UpdateStatus(ctx, trx.ID, status, out.GatewayTransactionID)
	if err != nil {
		return nil, newError(CodeInternalError, "unexpected error: %v", err)
	}
	if !applied {
		// A webhook finalized the transaction first; report the stored state.
		u.log.Info("status update skipped, transaction already finalized",
			zap.String("transaction_id", trx.ID))
		stored, err := u.transactions.FindByID(ctx, trx.ID)
		if err != nil || stored == nil {
			return nil, newError(CodeInternalError, "transaction %s reload failed", trx.ID)
		}
		return stored, nil
	}

	trx.ApplyGatewayStatus(status, out.GatewayTransactionID)

	u.log.Info("payment processed",
		zap.String("transaction_id", trx.ID),
		zap.String("gateway_transaction_id", out.GatewayTransactionID),
		zap.String("status", string(trx.Status)))

	// Winning the conditional update into APPROVED is what makes this the
	// single caller allowed to run the stock side effect.
	if status == StatusApproved {
		ApplyStockDecrement(ctx, u.products, trx, u.log)
	}

	return trx, nil
}
