// Package delivery defines the contract every transport entry point of the
// application fulfills, regardless of protocol.
package delivery

import "context"

// Delivery is a long-running entry point such as an HTTP server. Serve blocks
// until the delivery stops or fails; shutdown is driven by the lifecycle
// hooks registered at construction.
type Delivery interface {
	Serve(ctx context.Context) error
}
