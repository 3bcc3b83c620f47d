package usecase

import (
	"context"

	"kasir/internal/domain/entity"
)

// CheckoutUsecase assembles transactions: it claims every currently
// unassigned cart item of a business into a new immutable transaction record.
type CheckoutUsecase interface {
	// AssembleTransaction claims all unassigned cart items atomically, builds
	// the line snapshot and persists the aggregate. With zero unassigned
	// items it fails without creating anything.
	AssembleTransaction(ctx context.Context, businessID string, totalPayment int64) (*entity.Transaction, error)
}
