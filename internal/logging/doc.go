// Package logging constructs the slog loggers used across tessera.
package logging
