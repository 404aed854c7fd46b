// Package server runs the harness's HTTP transport: startup, signal
// handling, and graceful shutdown.
package server
