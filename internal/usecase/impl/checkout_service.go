// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kasir/internal/delivery/context"
	"kasir/internal/domain/constants"
	"kasir/internal/domain/entity"
	domainerrors "kasir/internal/domain/errors"
	"kasir/internal/domain/repository"
	"kasir/internal/domain/service"
	"kasir/internal/usecase"

	"github.com/pkg/errors"
)

// checkoutService implements the CheckoutUsecase interface. It is the only
// service that needs the TransactionManager: claiming the cart items and
// writing the aggregate must be one atomic unit, so a crash or a lost write
// can never leave items stamped with a transaction that does not exist.
type checkoutService struct {
	txManager       repository.TransactionManager
	transactionRepo repository.TransactionRepository
	allocator       service.IDAllocator
	publisher       service.EventPublisher
	logger          *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	txManager repository.TransactionManager,
	transactionRepo repository.TransactionRepository,
	allocator service.IDAllocator,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:       txManager,
		transactionRepo: transactionRepo,
		allocator:       allocator,
		publisher:       publisher,
		logger:          logger,
	}
}

// AssembleTransaction groups every unassigned cart item of the business into
// a new immutable transaction:
//
//  1. Allocate a transaction id scoped to the business's transaction collection.
//  2. Inside one store transaction: read the unassigned items, stamp each one
//     with the new id, and write the aggregate with the computed line snapshot.
//
// With zero unassigned items nothing is written and the caller gets
// ErrNoPendingItems. A failed commit stamps nothing.
func (srv *checkoutService) AssembleTransaction(ctx context.Context, businessID string, totalPayment int64) (*entity.Transaction, error) {
	if businessID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "business id is required")
	}
	if totalPayment < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "total payment must not be negative")
	}

	srv.logger.Info("Assembling transaction", "businessID", businessID)

	transactionID, err := srv.allocator.Allocate(ctx, constants.DocumentIDLength, func(ctx context.Context, id string) (bool, error) {
		return srv.transactionRepo.Exists(ctx, businessID, id)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate transaction id")
	}

	var transaction *entity.Transaction

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// The store may retry this callback on contention; start clean.
		transaction = nil

		items, err := repoFactory.CartItems().ListUnassigned(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "failed to list unassigned cart items")
		}

		if len(items) == 0 {
			return errors.WithStack(domainerrors.ErrNoPendingItems)
		}

		lines := make([]entity.TransactionLine, 0, len(items))
		for _, item := range items {
			if err := repoFactory.CartItems().Claim(ctx, businessID, item.ID, transactionID); err != nil {
				return errors.Wrapf(err, "failed to claim cart item %s", item.ID)
			}
			lines = append(lines, entity.LineFromCartItem(item))
		}

		transaction = &entity.Transaction{
			ID:           transactionID,
			BusinessID:   businessID,
			Lines:        lines,
			TotalPayment: totalPayment,
			CreatedAt:    time.Now().UTC(),
		}

		if err := repoFactory.Transactions().Create(ctx, transaction); err != nil {
			return errors.Wrap(err, "failed to persist transaction aggregate")
		}

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		srv.logger.Error("transaction assembly failed", "businessID", businessID, "error", err)

		return nil, errors.Wrapf(domainerrors.ErrPersistenceFailure, "transaction %s was not committed: %v", transactionID, err)
	}

	srv.logger.Info("Transaction assembled",
		"businessID", businessID,
		"transactionID", transactionID,
		"lineCount", len(transaction.Lines),
	)

	// Best-effort: a lost event never fails the checkout.
	event := &service.TransactionEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		TransactionID: transaction.ID,
		BusinessID:    transaction.BusinessID,
		TotalPayment:  transaction.TotalPayment,
		LineCount:     len(transaction.Lines),
	}
	if err := srv.publisher.PublishTransactionEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish transaction event", "transactionID", transaction.ID, "error", err)
	}

	return transaction, nil
}
