// Package logging builds the process logger shared by the life commands.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New returns a timestamped logger writing to stderr at the given level.
// Level names are those understood by log.ParseLevel ("debug", "info",
// "warn", "error", "fatal"); an empty level means "info".
func New(prefix, level string) (*log.Logger, error) {
	return NewWriter(os.Stderr, prefix, level)
}

// NewWriter is like New but writes to w.
func NewWriter(w io.Writer, prefix, level string) (*log.Logger, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	}), nil
}

// Discard returns a logger that drops everything. Used where a component
// requires a logger but the caller has none.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
