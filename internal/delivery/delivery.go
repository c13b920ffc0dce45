// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a running transport surface (HTTP server, worker, ...).
type Delivery interface {
	Serve(ctx context.Context) error
}
