// Package logging configures the application logger.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Options holds logger configuration.
type Options struct {
	Level  log.Level
	Prefix string
	// Path is an optional log file, opened in append mode and written in
	// addition to the console writer.
	Path string
}

// DefaultOptions returns default options for the application logger.
func DefaultOptions() Options {
	return Options{
		Level:  log.InfoLevel,
		Prefix: "schedule",
	}
}

// New builds a logger writing to w and, when Options.Path is set, to the
// log file as well. The returned close function owns the file handle.
func New(w io.Writer, opts Options) (*log.Logger, func() error, error) {
	out := w
	closer := func() error { return nil }

	if opts.Path != "" {
		f, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(w, f)
		closer = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           opts.Level,
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
	})
	return logger, closer, nil
}

// ParseLevel maps a config level string to a log.Level. Unknown or empty
// strings fall back to info rather than failing startup.
func ParseLevel(s string) log.Level {
	if s == "" {
		return log.InfoLevel
	}
	lvl, err := log.ParseLevel(s)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
