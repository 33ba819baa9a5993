// Package logging provides structured logging using Go's standard library
// log/slog, in text form for terminals or JSON for machine consumption, and
// integrates with Uber's Fx dependency injection framework.
package logging
