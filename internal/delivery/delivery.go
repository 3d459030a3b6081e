// Package delivery defines the inbound transport abstraction the
// application serves through.
package delivery

import "context"

// Delivery is a transport serving the application until its context is
// done. Implementations register their own shutdown with the lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
