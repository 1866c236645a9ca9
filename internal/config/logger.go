package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// AppName is attached to every log line.
const AppName = "item-catalog"

// NewLogger creates a new logger based on the configuration, writing to stdout.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg LoggerConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).With().
		Timestamp().
		Str("app", AppName).
		Logger()
}
