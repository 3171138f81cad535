package resilience

import (
	"context"
	"time"
)

// Retry runs fn until it succeeds, returns a non-retryable error, or the
// policy runs out of attempts. The wait between attempts honours ctx.
func Retry(ctx context.Context, policy RetryPolicy, retryable func(error) bool, fn func(attempt int) error) error {
	policy = NormalizeRetryPolicy(policy)

	var lastErr error
	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		lastErr = fn(attempt)
		if lastErr == nil {
			return nil
		}
		if retryable == nil || !retryable(lastErr) || attempt == policy.MaxRetries {
			return lastErr
		}

		timer := time.NewTimer(time.Duration(attempt+1) * policy.Backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return lastErr
}
