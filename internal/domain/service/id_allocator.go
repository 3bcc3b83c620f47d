// Package service defines interfaces for domain services implemented by the
// infrastructure layer.
package service

import "context"

// ExistsFunc probes the target collection for a candidate identifier.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

// IDAllocator produces random URL-safe document identifiers of a requested
// length, regenerating while the candidate already exists in the target
// collection.
//
// The probe is check-then-act: between the existence check and the eventual
// document write another allocator may pick the same id. At 16-20 random
// characters the collision probability is negligible, so this is accepted
// rather than coordinated.
type IDAllocator interface {
	// Allocate returns an identifier of the given length that did not exist
	// at probe time. The regeneration loop is bounded; exhaustion returns an
	// error instead of spinning.
	Allocate(ctx context.Context, length int, exists ExistsFunc) (string, error)
}
