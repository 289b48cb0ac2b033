package config

import "time"

// ClientAdapter holds transport settings for the debug client, resolved
// from its command-line flags.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the sync server. A bare "host:port"
	// is accepted and assumed to be plain HTTP.
	HTTPAddress string

	// RequestTimeout bounds every outbound request made by the adapter.
	RequestTimeout time.Duration
}
