package webhook

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	checkoutuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/checkout"
	productuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/product"
)

// Event is the provider push notification. Reference carries the internal
// transaction id echoed back by the gateway.
type Event struct {
	Event string    `json:"event"`
	Data  EventData `json:"data"`
}

type EventData struct {
	Transaction EventTransaction `json:"transaction"`
}

type EventTransaction struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

type Usecase struct {
	transactions checkoutuc.TransactionStore
	products     productuc.Store
	log          *zap.Logger
}

func New(transactions checkoutuc.TransactionStore, products productuc.Store, log *zap.Logger) *Usecase {
	return &Usecase{transactions: transactions, products: products, log: log}
}

// Execute applies a provider notification to the referenced transaction.
// Unknown references and already-final transactions are successful no-ops,
// which is what makes redelivered or out-of-order webhooks safe.
func (u *Usecase) Execute(ctx context.Context, ev Event) error {
	ref := ev.Data.Transaction.Reference
	gatewayID := ev.Data.Transaction.ID
	rawStatus := ev.Data.Transaction.Status

	u.log.Info("handling gateway event",
		zap.String("reference", ref),
		zap.String("status", rawStatus))

	trx, err := u.transactions.FindByID(ctx, ref)
	if err != nil {
		u.log.Error("transaction lookup failed", zap.String("reference", ref), zap.Error(err))
		return fmt.Errorf("webhook transaction lookup: %w", err)
	}
	if trx == nil {
		u.log.Warn("transaction not found for reference, ignoring event", zap.String("reference", ref))
		return nil
	}
	if trx.Final() {
		u.log.Info("transaction already final, ignoring event",
			zap.String("reference", ref),
			zap.String("status", string(trx.Status)))
		return nil
	}

	var target checkoutuc.Status
	switch rawStatus {
	case "APPROVED":
		target = checkoutuc.StatusApproved
	case "DECLINED":
		target = checkoutuc.StatusDeclined
	case "ERROR":
		target = checkoutuc.StatusError
	case "VOIDED":
		target = checkoutuc.StatusDeclined
	default:
		u.log.Info("ignoring gateway status", zap.String("status", rawStatus))
		return nil
	}

	applied, err := u.transactions.UpdateStatus(ctx, trx.ID, target, gatewayID)
	if err != nil {
		u.log.Error("transaction update failed", zap.String("reference", ref), zap.Error(err))
		return fmt.Errorf("webhook transaction update: %w", err)
	}
	if !applied {
		// The synchronous payment path finalized first.
		u.log.Info("transaction finalized concurrently, ignoring event", zap.String("reference", ref))
		return nil
	}

	u.log.Info("transaction updated",
		zap.String("reference", ref),
		zap.String("status", string(target)))

	if target == checkoutuc.StatusApproved {
		checkoutuc.ApplyStockDecrement(ctx, u.products, trx, u.log)
	}

	return nil
}
