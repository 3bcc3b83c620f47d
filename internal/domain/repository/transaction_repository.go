package repository

import (
	"context"
	"errors"

	"kasir/internal/domain/entity"
)

// ErrTransactionNotFound is a domain-specific error returned when a transaction is not found.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines the operations for transaction persistence.
// Transactions are append-only: there is no update or delete.
type TransactionRepository interface {
	// FindByID retrieves a single transaction under the given business.
	FindByID(ctx context.Context, businessID, transactionID string) (*entity.Transaction, error)

	// Exists reports whether a transaction document with the given id is present.
	Exists(ctx context.Context, businessID, transactionID string) (bool, error)

	// Create persists a new transaction aggregate.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// ListByCreatedDesc returns all transactions under the business, newest first.
	ListByCreatedDesc(ctx context.Context, businessID string) ([]*entity.Transaction, error)
}
