// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a transport endpoint (HTTP server, worker, ...) managed by the app container.
type Delivery interface {
	// Serve blocks, serving requests until the server is shut down.
	Serve(ctx context.Context) error
}
