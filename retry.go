package fsutil

import (
	"context"
	"time"

	"github.com/jmgilman/go/fsutil/errors"
)

const (
	// DefaultMaxAttempts is the number of attempts made before a persistent
	// sharing violation is returned.
	DefaultMaxAttempts = 10

	// DefaultRetryDelay is the pause between attempts.
	DefaultRetryDelay = 50 * time.Millisecond
)

// WaitFunc pauses between two attempts. A non-nil error aborts the retry
// loop and is returned to the caller.
type WaitFunc func(ctx context.Context, d time.Duration) error

// Sleep blocks the calling goroutine for d and ignores ctx.
func Sleep(_ context.Context, d time.Duration) error {
	time.Sleep(d)
	return nil
}

// ContextWait waits for d or until ctx is done, whichever comes first.
func ContextWait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// RetryPolicy bounds the retries of one mutating operation.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int
	// Delay is the fixed pause between attempts.
	Delay time.Duration
}

// DefaultRetryPolicy returns 10 attempts 50ms apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		Delay:       DefaultRetryDelay,
	}
}

// Validate rejects policies that cannot make a single attempt or would wait
// a negative time.
func (p RetryPolicy) Validate() error {
	if p.MaxAttempts < 1 {
		return errors.Newf(errors.CodeInvalidInput, "max attempts must be at least 1, got %d", p.MaxAttempts)
	}
	if p.Delay < 0 {
		return errors.Newf(errors.CodeInvalidInput, "retry delay must not be negative, got %s", p.Delay)
	}
	return nil
}

// Do runs op until it succeeds, fails with an error that is not a sharing
// violation, or MaxAttempts attempts have failed. In the last case the final
// sharing violation is returned unmodified. wait is called between attempts;
// a nil wait means Sleep.
func (p RetryPolicy) Do(ctx context.Context, wait WaitFunc, op func() error) error {
	return p.do(ctx, wait, op, nil)
}

// retryHook observes a failed attempt that is about to be retried.
type retryHook func(attempt int, err error, delay time.Duration)

func (p RetryPolicy) do(ctx context.Context, wait WaitFunc, op func() error, hook retryHook) error {
	if wait == nil {
		wait = Sleep
	}
	for attempt := 1; ; attempt++ {
		res := Classify(op())
		if res.OK() {
			return nil
		}
		if !res.Retryable() || attempt >= p.MaxAttempts {
			return res.Err
		}
		if hook != nil {
			hook(attempt, res.Err, p.Delay)
		}
		if err := wait(ctx, p.Delay); err != nil {
			return err
		}
	}
}
