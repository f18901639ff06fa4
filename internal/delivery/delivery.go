// Package delivery defines the contract shared by every serving surface of
// the process, HTTP servers and background loops alike.
package delivery

import "context"

// Delivery is a long-running serving loop started by the application
// container. Serve blocks until the loop stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
