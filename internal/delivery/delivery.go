package delivery

import "context"

// Delivery is an inbound adapter (HTTP API, worker endpoint, queue consumer) started by main.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
