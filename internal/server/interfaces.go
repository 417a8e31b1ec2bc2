package server

// Server is the lifecycle contract the entrypoint runs the service through:
// [RunServer] blocks until a termination signal arrives, [Shutdown] drains
// in-flight requests and stops the background workers.
type Server interface {
	RunServer()
	Shutdown()
}
