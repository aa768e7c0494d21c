// Package domain holds the interfaces the Moray tooling is wired through.
// Concrete implementations live in their own packages (log, ui, config,
// catalog); actions depend only on these contracts so they can be tested
// with fakes.
package domain

import (
	"io"

	"github.com/moray-shell/moray/internal/signature"
)

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)

	// Set sets a configuration value.
	Set(key, value string) error

	// Unset removes a configuration value.
	Unset(key string) error
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays content through a pager if appropriate.
	Pager(content string)
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// CatalogStore defines operations for persisting command signatures so
// external tooling (documentation generators, command discovery over IPC)
// can read them without linking the interpreter.
type CatalogStore interface {
	// Put inserts or updates the stored signature for a command.
	Put(sig signature.Signature) error

	// Get returns the stored signature for a command.
	Get(name string) (signature.Signature, error)

	// List returns all stored signatures in name order.
	List() ([]signature.Signature, error)

	// RecordExport records one export run and returns its identifier.
	RecordExport(count int) (string, error)

	// Close closes the store.
	Close() error
}
