// Package delivery contains the transports that expose the usecases.
package delivery

import "context"

// Delivery is a server started by the fx application and stopped through its lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
