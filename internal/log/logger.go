package log

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the console logger used by the web server. Everything below
// info is dropped in production.
func New(environment string) zerolog.Logger {
	return newWithOutput(os.Stdout, environment)
}

func newWithOutput(out io.Writer, environment string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    environment == "production",
	}

	level := zerolog.DebugLevel
	if environment == "production" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("env", environment).
		Logger()
}
