// Package retry provides a small generic retry helper with exponential
// backoff, used around flaky I/O such as cache lookups.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

type Policy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Permanent wraps an error to tell Do not to retry it.
func Permanent(err error) error {
	return &permanentError{err: err}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Do runs op until it succeeds, returns a permanent error, the attempt budget
// is exhausted, or the context is cancelled. Backoff doubles per attempt up
// to MaxBackoff.
func Do[T any](ctx context.Context, p Policy, op func() (T, error)) (T, error) {
	var zero T
	backoff := p.InitialBackoff

	for attempt := 1; ; attempt++ {
		val, err := op()
		if err == nil {
			return val, nil
		}

		var perm *permanentError
		if errors.As(err, &perm) {
			return zero, perm.err
		}

		if attempt >= p.MaxAttempts {
			return zero, fmt.Errorf("failed after %d attempts: %w", attempt, err)
		}

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return zero, fmt.Errorf("retry aborted: %w", ctx.Err())
		}

		backoff *= 2
		if p.MaxBackoff > 0 && backoff > p.MaxBackoff {
			backoff = p.MaxBackoff
		}
	}
}

// DoVoid is Do for operations without a result.
func DoVoid(ctx context.Context, p Policy, op func() error) error {
	_, err := Do(ctx, p, func() (struct{}, error) { return struct{}{}, op() })
	return err
}
