// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: listening on the configured port, serving the
// request pipeline, waiting for a termination signal (SIGINT, SIGTERM or
// SIGQUIT) and draining in-flight requests within the configured shutdown
// timeout.
package server
