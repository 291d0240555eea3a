package baseconv

import "github.com/bft-labs/baseconv/pkg/log"

// Option configures optional behavior of a Converter.
type Option func(*options)

// options holds the optional configuration for a Converter.
type options struct {
	logger log.Logger
}

// defaultOptions returns options with sensible defaults.
func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
