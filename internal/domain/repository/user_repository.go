package repository

import (
	"context"
	"errors"

	"kasir/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by the externally supplied id.
	FindByID(ctx context.Context, userID string) (*entity.User, error)

	// Exists reports whether a user document with the given id is present.
	Exists(ctx context.Context, userID string) (bool, error)

	// Create persists a new user document. The caller is responsible for the
	// duplicate-id pre-check; Create overwrites nothing it should not.
	Create(ctx context.Context, user *entity.User) error
}
