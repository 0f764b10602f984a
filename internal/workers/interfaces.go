// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/internal/store"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled and then returns.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// Store is the part of the user store the health checker needs.
// *store.DB satisfies it.
type Store interface {
	store.Pinger
	store.ErrorClassificator
}
