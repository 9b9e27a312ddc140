// Package delivery defines the contract every transport (HTTP API, worker) implements.
package delivery

import "context"

// Delivery is a long-running transport that serves until the context is done
// or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
