// Package delivery defines the contract every delivery mechanism satisfies.
package delivery

import "context"

// Delivery is a long-running server started by the application lifecycle.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
