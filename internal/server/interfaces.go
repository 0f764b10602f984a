package server

import "context"

// Server is the lifecycle of the transport servers.
type Server interface {
	// RunServer serves until ctx is cancelled or a listener fails, then
	// shuts every server down. A listener failure is returned.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops all servers.
	Shutdown()
}

// listener is one transport managed by [server].
type listener interface {
	serve() error
	shutdown()
	name() string
}
