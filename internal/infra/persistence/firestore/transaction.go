package firestore

import (
	"context"

	"kasir/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// firestoreTransactionManager implements the domain's TransactionManager
// interface using Firestore's native transaction primitive.
type firestoreTransactionManager struct {
	client *firestore.Client
}

// firestoreRepositoryFactory implements the domain's RepositoryFactory
// interface. It holds a specific Firestore transaction and hands out
// repository instances bound to it, so every read and write inside the
// callback is part of the same atomic unit.
type firestoreRepositoryFactory struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

// CartItems returns a cart item repository bound to the transaction.
func (f *firestoreRepositoryFactory) CartItems() repository.CartItemRepository {
	return &cartItemRepository{session{client: f.client, tx: f.tx}}
}

// Transactions returns a transaction repository bound to the transaction.
func (f *firestoreRepositoryFactory) Transactions() repository.TransactionRepository {
	return &transactionRepository{session{client: f.client, tx: f.tx}}
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs the given function within a single Firestore transaction.
// Firestore buffers all writes until the callback returns: if fn errors the
// buffered writes are discarded, otherwise they commit atomically. Firestore
// may retry fn on contention, so fn must be safe to run more than once.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		factory := &firestoreRepositoryFactory{client: tm.client, tx: tx}

		return fn(factory)
	})
	if err != nil {
		return errors.Wrap(err, "store transaction failed")
	}

	return nil
}
