// Package delivery defines the contract shared by the application's serving
// surfaces (HTTP API, pub/sub worker).
package delivery

import "context"

// Delivery is a long-running serving surface started by the application entrypoint.
type Delivery interface {
	// Serve blocks until the surface stops or ctx is cancelled.
	Serve(ctx context.Context) error
}
