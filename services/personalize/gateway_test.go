package personalize

import (
	"context"
	"errors"
	"testing"
	"time"
)

// flakyCompleter fails a fixed number of times before succeeding.
type flakyCompleter struct {
	failures int
	err      error
	calls    int
}

func (f *flakyCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", f.err
	}
	return "ok", nil
}

func TestRetryingCompleter(t *testing.T) {
	ctx := context.Background()

	t.Run("transient failure is retried", func(t *testing.T) {
		inner := &flakyCompleter{
			failures: 1,
			err:      &ProviderError{Category: ProviderUnavailable, Message: "503"},
		}
		completer := &retryingCompleter{inner: inner, timeout: time.Second, maxRetries: 2}

		result, err := completer.Complete(ctx, "system", "prompt")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != "ok" {
			t.Errorf("expected ok, got %q", result)
		}
		if inner.calls != 2 {
			t.Errorf("expected 2 attempts, got %d", inner.calls)
		}
	})

	t.Run("authentication failure is never retried", func(t *testing.T) {
		inner := &flakyCompleter{
			failures: 5,
			err:      &ProviderError{Category: ProviderAuth, Message: "provider authentication failed"},
		}
		completer := &retryingCompleter{inner: inner, timeout: time.Second, maxRetries: 3}

		_, err := completer.Complete(ctx, "system", "prompt")
		var provErr *ProviderError
		if !errors.As(err, &provErr) {
			t.Fatalf("expected ProviderError, got %v", err)
		}
		if provErr.Category != ProviderAuth {
			t.Errorf("expected auth category, got %s", provErr.Category)
		}
		if inner.calls != 1 {
			t.Errorf("expected a single attempt, got %d", inner.calls)
		}
	})

	t.Run("retries stop at the configured maximum", func(t *testing.T) {
		inner := &flakyCompleter{
			failures: 10,
			err:      &ProviderError{Category: ProviderUnavailable, Message: "503"},
		}
		completer := &retryingCompleter{inner: inner, timeout: time.Second, maxRetries: 1}

		_, err := completer.Complete(ctx, "system", "prompt")
		var provErr *ProviderError
		if !errors.As(err, &provErr) {
			t.Fatalf("expected ProviderError, got %v", err)
		}
		if inner.calls != 2 {
			t.Errorf("expected 2 attempts, got %d", inner.calls)
		}
	})

	t.Run("caller cancellation stops retries", func(t *testing.T) {
		cancelledCtx, cancel := context.WithCancel(context.Background())
		cancel()

		inner := &flakyCompleter{
			failures: 10,
			err:      &ProviderError{Category: ProviderUnavailable, Message: "503"},
		}
		completer := &retryingCompleter{inner: inner, timeout: time.Second, maxRetries: 3}

		_, err := completer.Complete(cancelledCtx, "system", "prompt")
		var provErr *ProviderError
		if !errors.As(err, &provErr) {
			t.Fatalf("expected ProviderError, got %v", err)
		}
		if provErr.Category != ProviderTimeout {
			t.Errorf("expected timeout category for cancellation, got %s", provErr.Category)
		}
		if inner.calls != 1 {
			t.Errorf("expected a single attempt, got %d", inner.calls)
		}
	})
}

func TestClassifyProviderError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ProviderErrorCategory
	}{
		{"deadline exceeded", context.DeadlineExceeded, ProviderTimeout},
		{"wrapped cancellation", errors.Join(errors.New("call failed"), context.Canceled), ProviderTimeout},
		{"401 status", errors.New("API returned unexpected status code: 401"), ProviderAuth},
		{"invalid key phrase", errors.New("Invalid API key provided"), ProviderAuth},
		{"429 status", errors.New("API returned unexpected status code: 429"), ProviderRateLimit},
		{"quota phrase", errors.New("you have exceeded your quota"), ProviderRateLimit},
		{"anything else", errors.New("connection refused"), ProviderUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyProviderError(tt.err)
			if got.Category != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got.Category)
			}
		})
	}
}
