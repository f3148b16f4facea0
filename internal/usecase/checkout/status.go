package checkout

import (
	"context"

	"go.uber.org/zap"
)

type StatusUsecase struct {
	transactions TransactionStore
	log          *zap.Logger
}

func NewStatus(transactions TransactionStore, log *zap.Logger) *StatusUsecase {
	return &StatusUsecase{transactions: transactions, log: log}
}

func (u *StatusUsecase) Execute(ctx context.Context, transactionID string) (*Transaction, error) {
	trx, err := u.transactions.FindByID(ctx, transactionID)
	if err != nil {
		u.log.Error("transaction lookup failed", zap.String("transaction_id", transactionID), zap.Error(err))
		return nil, newError(CodeInternalError, "unexpected error: %v", err)
	}
	if trx == nil {
		return nil, newError(CodeTransactionNotFound, "transaction %s not found", transactionID)
	}
	return trx, nil
}
