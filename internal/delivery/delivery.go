// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP API, worker endpoint).
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
