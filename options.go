package clist

import "github.com/samueldeng/clist/rotation"

// options configures a Runner.
type options struct {
	strategy rotation.Strategy
}

// Option configures a Runner at construction time.
type Option func(*options)

// WithRotationStrategy sets the strategy deciding when a worker's
// active journal segment should be closed and published. Defaults to
// rotating every 1000 records.
func WithRotationStrategy(strategy rotation.Strategy) Option {
	return func(o *options) {
		o.strategy = strategy
	}
}

func defaultOptions() options {
	return options{
		strategy: rotation.NewCountStrategy(1000),
	}
}
