// Package logging constructs the zerolog loggers used by the command-line
// shell. Library packages never log; this stays internal to keep it that way.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Console returns a pretty console logger writing to stderr. Verbose enables
// debug-level output.
func Console(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// NewWithWriter returns a JSON logger with a custom writer and level, used in
// tests.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
