package collector

import (
	"context"
	"errors"
	"time"
)

// retry calls fn once plus up to retries more times while it returns a
// retryable error, sleeping a fixed backoff between attempts. It returns the
// number of attempts made and the last error. Context cancellation stops the
// loop between attempts and settles as a NetworkError.
func retry(ctx context.Context, retries int, backoff time.Duration, fn func() error) (int, error) {
	var err error
	attempts := 0
	for attempt := 0; attempt <= retries; attempt++ {
		attempts++
		err = fn()
		if err == nil || !isRetryable(err) {
			return attempts, err
		}
		if attempt < retries {
			select {
			case <-ctx.Done():
				return attempts, cancelled(ctx, err)
			case <-time.After(backoff):
			}
		}
	}
	return attempts, err
}

// cancelled wraps the context error, keeping the target of the last attempt.
func cancelled(ctx context.Context, last error) error {
	fe := &FetchError{Class: NetworkError, Err: ctx.Err()}
	var prev *FetchError
	if errors.As(last, &prev) {
		fe.Kind, fe.Symbol = prev.Kind, prev.Symbol
	}
	return fe
}
