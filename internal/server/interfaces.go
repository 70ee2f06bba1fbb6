package server

// Server is the lifecycle contract for the auth API's inbound transport.
// The HTTP server is currently the only implementation.
//
// RunServer blocks until a stop signal arrives and the listener has been
// drained; Shutdown stops accepting connections and lets in-flight requests
// finish.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
