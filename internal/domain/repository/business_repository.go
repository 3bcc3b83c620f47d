// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"kasir/internal/domain/entity"
)

// ErrBusinessNotFound is a domain-specific error returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the standard operations for business persistence.
// The application layer depends on this interface, not the concrete implementation.
type BusinessRepository interface {
	// FindByID retrieves a single business by its identifier.
	FindByID(ctx context.Context, businessID string) (*entity.Business, error)

	// Exists reports whether a business document with the given id is present.
	Exists(ctx context.Context, businessID string) (bool, error)

	// Create persists a new business document.
	Create(ctx context.Context, business *entity.Business) error

	// Patch applies a partial update; nil patch fields are left untouched.
	Patch(ctx context.Context, businessID string, patch *entity.BusinessPatch) error
}
