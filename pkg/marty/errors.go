package marty

import "fmt"

// ConfigError reports a connection URL that cannot be resolved to a
// transport: a malformed descriptor or an unknown scheme. It is raised
// before any connection attempt.
type ConfigError struct {
	// URL is the offending connection descriptor.
	URL string

	// Reason says what was wrong with it.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("marty: invalid connection URL %q: %s", e.URL, e.Reason)
}
