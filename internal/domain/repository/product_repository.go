package repository

import (
	"context"
	"errors"

	"kasir/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product under the given business.
	FindByID(ctx context.Context, businessID, productID string) (*entity.Product, error)

	// Exists reports whether a product document with the given id is present.
	Exists(ctx context.Context, businessID, productID string) (bool, error)

	// ExistsByName reports whether a product with the exact given name is
	// already present under the business. Advisory only: two concurrent
	// creations may both pass the check.
	ExistsByName(ctx context.Context, businessID, name string) (bool, error)

	// Create persists a new product document.
	Create(ctx context.Context, product *entity.Product) error

	// ListByCreatedDesc returns all products under the business, newest first.
	ListByCreatedDesc(ctx context.Context, businessID string) ([]*entity.Product, error)

	// SearchByPrefix returns products whose prefix index contains the exact
	// (already lowercased) query string, in store-native order.
	SearchByPrefix(ctx context.Context, businessID, prefix string) ([]*entity.Product, error)

	// Patch applies a partial update; nil patch fields are left untouched.
	Patch(ctx context.Context, businessID, productID string, patch *entity.ProductPatch) error

	// Delete removes the product document.
	Delete(ctx context.Context, businessID, productID string) error
}
