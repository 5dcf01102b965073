// Package timeouts holds the HTTP and process lifecycle durations for the site.
package timeouts

import "time"

const (
	// ReadHeader bounds how long the server waits for request headers.
	ReadHeader = 5 * time.Second
	// Read bounds reading a full request, body included.
	Read = 15 * time.Second
	// Write bounds writing a response.
	Write = 30 * time.Second
	// Idle bounds keep-alive connections between requests.
	Idle = 2 * time.Minute
	// Shutdown is the grace period for in-flight requests on stop.
	Shutdown = 10 * time.Second
	// TelemetryFlush bounds flushing pending spans on exit.
	TelemetryFlush = 5 * time.Second
)
