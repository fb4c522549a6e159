// Package delivery defines the contract every transport front end fulfils.
package delivery

import "context"

// Delivery is a serving surface of the application, started by main and
// stopped through the fx lifecycle.
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}
