// Package logging builds the zerolog logger shared by the CLI commands.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Setup initializes a zerolog.Logger writing to stderr.
// format can be "text" (human-friendly console) or "json" (structured).
// An unrecognized level falls back to info.
func Setup(format, level string) zerolog.Logger {
	return New(os.Stderr, format, level)
}

// New is Setup with an explicit writer.
func New(w io.Writer, format, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if format == "text" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Discard returns a logger that drops everything. The TUI uses it so log
// lines never land on the alternate screen.
func Discard() zerolog.Logger {
	return zerolog.Nop()
}
