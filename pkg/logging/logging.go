// Package logging builds the process logger. Every record carries the
// service attributes passed to New, so lines from the server, the seed
// command and background systems can be told apart.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates a logger writing to the configured output. attrs are
// attached to every record, typically service and mode.
func New(cfg *Config, attrs ...any) *slog.Logger {
	return NewWithWriter(cfg, cfg.Output.writer(), attrs...)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(cfg *Config, w io.Writer, attrs ...any) *slog.Logger {
	level, _ := cfg.Level.parse()
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(attrs...)
}

// Level is a slog level name: debug, info, warn or error.
type Level string

func (l Level) parse() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(string(l)))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", l)
	}
	return level, nil
}

// Format is the record encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Output names the stream records are written to.
type Output string

const (
	OutputStdout Output = "stdout"
	OutputStderr Output = "stderr"
)

func (o Output) writer() io.Writer {
	if o == OutputStderr {
		return os.Stderr
	}
	return os.Stdout
}
