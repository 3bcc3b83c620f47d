package usecase

import (
	"context"

	"kasir/internal/domain/entity"
)

// TransactionUsecase is the read-only surface over finalized transactions.
type TransactionUsecase interface {
	// ListTransactions returns all transactions of a business, newest first.
	ListTransactions(ctx context.Context, businessID string) ([]*entity.Transaction, error)

	GetTransaction(ctx context.Context, businessID, transactionID string) (*entity.Transaction, error)
}
