// Package preview serves a generated artifact tree over HTTP so diagrams
// can consume it with !includeurl during development.
package preview

import "errors"

// DefaultAddress is the default address for the preview server.
const DefaultAddress = ":8080"

// ErrEmptyAddress is returned when the address is empty.
var ErrEmptyAddress = errors.New("address must not be empty")

// ErrEmptyDir is returned when no directory to serve is configured.
var ErrEmptyDir = errors.New("directory must not be empty")

// ErrListenFailed is returned when the server fails to listen on the
// configured address.
var ErrListenFailed = errors.New("failed to listen")

// ErrShutdownFailed is returned when the server fails to shut down
// gracefully.
var ErrShutdownFailed = errors.New("shutdown failed")

// Config holds the configuration for the preview server.
type Config struct {
	Address string
	Dir     string
}

// SetDefaults sets default values for the Config.
func (c *Config) SetDefaults() {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
}

// Validate validates the Config.
func (c *Config) Validate() error {
	if c.Address == "" {
		return ErrEmptyAddress
	}

	if c.Dir == "" {
		return ErrEmptyDir
	}

	return nil
}
