package simplelist

import (
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

// Options contains the configuration options of a list.
type Options struct {
	// Logger receives trace records of structural mutations and debug records of rejected operations.
	Logger log.Logger
}

// WithLogger is an option to set the Logger of a list.
func WithLogger(logger log.Logger) options.Option[Options] {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// newOptions returns the Options that result from applying the given options to the defaults.
func newOptions(opts ...options.Option[Options]) *Options {
	return options.Apply(&Options{
		Logger: log.EmptyLogger,
	}, opts, func(o *Options) {
		if o.Logger == nil {
			o.Logger = log.EmptyLogger
		}
	})
}
