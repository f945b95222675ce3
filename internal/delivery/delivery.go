// Package delivery defines the contract every transport-facing server
// implements so the application can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server (HTTP, worker, ...) started at boot.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
