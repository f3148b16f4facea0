package checkout

import (
	"context"

	"go.uber.org/zap"

	productuc "github.com/RobertCastro/e-commerce-payment-service/internal/usecase/product"
)

// ApplyStockDecrement subtracts every item quantity from its product's
// stock. Callers must only invoke it after winning the conditional status
// update into APPROVED, which is what keeps the side effect exactly-once.
// A missing product or short stock is logged and tolerated: the transaction
// is already finalized and must stay that way.
func ApplyStockDecrement(ctx context.Context, products productuc.Store, trx *Transaction, log *zap.Logger) {
	for _, it := range trx.Items {
		applied, err := products.DecrementStock(ctx, it.ProductID, it.Quantity)
		if err != nil {
			log.Error("stock decrement failed",
				zap.String("transaction_id", trx.ID),
				zap.String("product_id", it.ProductID),
				zap.Error(err))
			continue
		}
		if !applied {
			log.Error("stock decrement skipped, product missing or stock short",
				zap.String("transaction_id", trx.ID),
				zap.String("product_id", it.ProductID),
				zap.Int("quantity", it.Quantity))
			continue
		}
		log.Info("stock decremented",
			zap.String("transaction_id", trx.ID),
			zap.String("product_id", it.ProductID),
			zap.Int("quantity", it.Quantity))
	}
}
