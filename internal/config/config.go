// Package config provides configuration helpers for go-marty commands.
package config

import (
	"os"
	"time"
)

// Defaults used by the CLI when no flag or environment override is given.
const (
	DefaultURL     = "socket://marty.local"
	DefaultTimeout = 5 * time.Second
)

// URL returns the connection URL from the MARTY_URL env var.
// Falls back to the provided default if not set.
func URL(defaultURL string) string {
	if u := os.Getenv("MARTY_URL"); u != "" {
		return u
	}
	return defaultURL
}

// Timeout returns the command timeout from the MARTY_TIMEOUT env var
// (a Go duration string, e.g. "2s"). Falls back to the default on
// absence or a malformed value.
func Timeout(defaultTimeout time.Duration) time.Duration {
	if t := os.Getenv("MARTY_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			return d
		}
	}
	return defaultTimeout
}
