package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errFlaky = errors.New("flaky")

func TestRetry_SucceedsAfterRetryableFailures(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Retry(context.Background(), RetryPolicy{MaxRetries: 2, Backoff: time.Millisecond},
		func(err error) bool { return errors.Is(err, errFlaky) },
		func(int) error {
			calls++
			if calls < 3 {
				return errFlaky
			}
			return nil
		})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestRetry_StopsOnNonRetryable(t *testing.T) {
	t.Parallel()

	permanent := errors.New("forbidden")
	calls := 0
	err := Retry(context.Background(), RetryPolicy{MaxRetries: 5, Backoff: time.Millisecond},
		func(err error) bool { return errors.Is(err, errFlaky) },
		func(int) error {
			calls++
			return permanent
		})
	if !errors.Is(err, permanent) || calls != 1 {
		t.Fatalf("expected single attempt with permanent error, got calls=%d err=%v", calls, err)
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	t.Parallel()

	calls := 0
	err := Retry(context.Background(), RetryPolicy{MaxRetries: 1, Backoff: time.Millisecond},
		func(error) bool { return true },
		func(int) error {
			calls++
			return errFlaky
		})
	if !errors.Is(err, errFlaky) || calls != 2 {
		t.Fatalf("expected 2 attempts ending in errFlaky, got calls=%d err=%v", calls, err)
	}
}

func TestRetry_ContextCancelledDuringBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	err := Retry(ctx, RetryPolicy{MaxRetries: 3, Backoff: time.Hour},
		func(error) bool { return true },
		func(int) error {
			cancel()
			return errFlaky
		})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
