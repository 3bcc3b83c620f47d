package repository

import "context"

// TransactionManager defines the interface for running a set of document reads
// and writes as one atomic unit. This lets the use case layer claim cart items
// and write the transaction aggregate all-or-nothing without depending on a
// specific store driver.
type TransactionManager interface {
	// Execute runs fn within a single store transaction. If fn returns an
	// error the transaction is discarded; otherwise it is committed. All
	// repository operations obtained from the factory read and write through
	// the same transaction. Store transactions require every read to happen
	// before the first write.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one store transaction.
type RepositoryFactory interface {
	// CartItems returns a CartItemRepository bound to the current transaction.
	CartItems() CartItemRepository

	// Transactions returns a TransactionRepository bound to the current transaction.
	Transactions() TransactionRepository
}
