package fsutil

import (
	"log/slog"
	"time"
)

// Option configures a Deleter or a Copier.
type Option func(*options)

type options struct {
	policy  RetryPolicy
	onRetry func(path string, attempt int, err error)
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{
		policy: DefaultRetryPolicy(),
		logger: slog.New(slog.DiscardHandler),
	}
}

func newOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRetryPolicy replaces the whole retry policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithMaxAttempts sets how many times one operation is attempted.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		o.policy.MaxAttempts = n
	}
}

// WithRetryDelay sets the pause between attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(o *options) {
		o.policy.Delay = d
	}
}

// WithOnRetry registers fn to be called each time an operation on path
// failed with a sharing violation and is about to be retried. attempt
// counts from 1.
func WithOnRetry(fn func(path string, attempt int, err error)) Option {
	return func(o *options) {
		o.onRetry = fn
	}
}

// WithLogger sets the logger for debug output. A nil logger discards.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		o.logger = logger
	}
}
