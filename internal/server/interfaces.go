package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer starts every configured transport and blocks until SIGINT,
	// SIGTERM or SIGQUIT arrives or a transport fails. Transports are shut
	// down gracefully before it returns.
	RunServer() error

	// Shutdown gracefully stops every transport, giving up when ctx expires.
	Shutdown(ctx context.Context) error
}

// transport is a single listening server (HTTP or gRPC).
type transport interface {
	// serve blocks until the transport stops. A graceful stop is not an error.
	serve() error
	shutdown(ctx context.Context) error
	name() string
	addr() string
}
