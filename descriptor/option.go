package descriptor

import "github.com/ardnew/archetype/log"

// Option configures [Read].
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger sets the logger used to trace reader progress.
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
