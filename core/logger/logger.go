// Package logger declares the logging interface used across the service.
// The zerolog-backed implementation lives under infra/logger.
package logger

// Logger exposes logging methods for the usual severity levels.
type Logger interface {
	Debugf(format string, args ...any)
	// Debugw logs a message with structured fields.
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
