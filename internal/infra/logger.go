package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the service logger. Development gets a console writer at
// debug level; every other environment logs JSON at info level.
func NewLogger(cfg *Config) zerolog.Logger {
	return newLogger(os.Stdout, cfg != nil && cfg.IsDevelopment())
}

func newLogger(out io.Writer, development bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if development {
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "cronos-site").
		Logger()
}

// Component returns a child logger tagged with the component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
