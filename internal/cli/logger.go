// Package cli holds the small amount of ambient machinery cmd/sebnfcheck
// needs: a configured logger and stdin reading, kept out of the analytical
// core so the core stays callable as a plain library.
package cli

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog.Logger writing to stderr, at debug level when
// verbose is set and info level otherwise.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
}

// ReadStdin reads all of os.Stdin into a string, the same full-slurp
// behavior every subcommand needs before parsing.
func ReadStdin() (string, error) {
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
