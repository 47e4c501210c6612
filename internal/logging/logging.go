// Package logging builds the leveled client logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

type Options struct {
	Level  string // debug | info | warn | error
	Format string // text | json | logfmt
	File   string // append here instead of the fallback writer
	Prefix string
}

// Open returns a logger writing to opts.File, or to fallback when no file is
// configured. The closer must be called once logging is done.
func Open(opts Options, fallback io.Writer) (*log.Logger, io.Closer, error) {
	if opts.File == "" {
		return New(fallback, opts), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	opts.File = ""
	l := New(f, opts)
	l.SetReportTimestamp(true)
	return l, f, nil
}

func New(w io.Writer, opts Options) *log.Logger {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = "todo"
	}
	return log.NewWithOptions(w, log.Options{
		Level:     ParseLevel(opts.Level),
		Formatter: ParseFormatter(opts.Format),
		Prefix:    prefix,
	})
}

// ParseLevel maps a config string to a log level, defaulting to warn.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
