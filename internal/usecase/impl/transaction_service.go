package impl

import (
	"context"
	"log/slog"

	"kasir/internal/domain/entity"
	domainerrors "kasir/internal/domain/errors"
	"kasir/internal/domain/repository"
	"kasir/internal/usecase"

	"github.com/pkg/errors"
)

// transactionService implements the read-only TransactionUsecase interface.
// Writes happen exclusively through checkout.
type transactionService struct {
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(transactionRepo repository.TransactionRepository, logger *slog.Logger) usecase.TransactionUsecase {
	return &transactionService{
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// ListTransactions returns all finalized transactions, newest first.
func (srv *transactionService) ListTransactions(ctx context.Context, businessID string) ([]*entity.Transaction, error) {
	transactions, err := srv.transactionRepo.ListByCreatedDesc(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction with its line snapshot.
func (srv *transactionService) GetTransaction(ctx context.Context, businessID, transactionID string) (*entity.Transaction, error) {
	transaction, err := srv.transactionRepo.FindByID(ctx, businessID, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTransactionNotFound, "transaction not found")
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}

	return transaction, nil
}
