package server

// Server is the lifecycle contract of the backend's transport servers.
//
// RunServer blocks until shutdown is requested; Shutdown stops serving
// and releases resources. The chat backend currently runs a single HTTP
// server behind this interface.
type Server interface {
	// RunServer starts serving API requests and blocks until the server
	// stops.
	RunServer()

	// Shutdown gracefully stops the server, letting in-flight requests
	// finish.
	Shutdown()
}
