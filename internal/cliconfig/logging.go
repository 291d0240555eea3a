package cliconfig

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/baseconv/pkg/log"
)

// Logger returns the CLI logger writing to stderr at level.
func Logger(level zerolog.Level) zerolog.Logger {
	return log.NewConsoleLogger(os.Stderr, level)
}
