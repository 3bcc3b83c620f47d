package repository

import (
	"context"
	"errors"
	"time"

	"kasir/internal/domain/entity"
)

// ErrCartItemNotFound is a domain-specific error returned when a cart item is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartItemRepository defines the standard operations for cart item persistence.
type CartItemRepository interface {
	// FindByID retrieves a single cart item under the given business.
	FindByID(ctx context.Context, businessID, itemID string) (*entity.CartItem, error)

	// Exists reports whether a cart item document with the given id is present.
	Exists(ctx context.Context, businessID, itemID string) (bool, error)

	// Create persists a new cart item document in the unassigned state.
	Create(ctx context.Context, item *entity.CartItem) error

	// ListUnassigned returns all items under the business whose transaction id
	// is empty, in store-native order.
	ListUnassigned(ctx context.Context, businessID string) ([]*entity.CartItem, error)

	// UpdateCount sets the item's count and updatedAt; no other field changes.
	UpdateCount(ctx context.Context, businessID, itemID string, count int64, updatedAt time.Time) error

	// Claim stamps the item with the given transaction id. The stamp is
	// applied once and never reverted.
	Claim(ctx context.Context, businessID, itemID, transactionID string) error

	// Delete removes the cart item document. Terminal: a deleted item can
	// never be referenced by a later transaction.
	Delete(ctx context.Context, businessID, itemID string) error
}
