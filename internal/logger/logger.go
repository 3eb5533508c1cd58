// Package logger builds the structured logger shared by the service.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Pretty bool   // console output instead of JSON
	Out    io.Writer
}

// New creates a structured logger. Unknown levels fall back to info.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Logger()
}
