// Package log provides a logging abstraction for baseconv components.
//
// The converter and the interactive session log through the Logger
// interface so that library users decide where messages go. A zerolog
// adapter is provided for the CLI and a no-op logger is the default.
//
// # Usage
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	conv := baseconv.New(baseconv.WithLogger(logger))
//
// Or silence everything:
//
//	logger := log.NewNoopLogger()
package log
