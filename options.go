package blossom

import (
	"io"

	"github.com/charmbracelet/log"
)

// discard is the logger used when no WithLogger option is given.
var discard = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})

// Option configures a graph via functional arguments. Options are carried
// over to every graph derived from it (filters, contractions, components).
type Option func(*options)

// options holds the per-graph configuration.
type options struct {
	logger *log.Logger
}

// defaultOptions returns options with a silent logger.
func defaultOptions() options {
	return options{logger: discard}
}

// WithLogger routes debug traces of the search (contractions, augmentations,
// component splits, bottleneck thresholds) to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
