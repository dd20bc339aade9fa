package lang

import "github.com/ardnew/archetype/log"

// Option configures parsing and evaluation behavior.
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger sets the logger used to trace parser progress.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

func makeOptions(opts ...Option) options {
	o := options{logger: log.Discard()}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
