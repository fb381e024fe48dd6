// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a running transport surface, collected into the fx
// "deliveries" group and served by the binary's entrypoint.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
