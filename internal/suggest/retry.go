package suggest

import (
	"context"
	"errors"
	"log"
	"net"
	"strings"
	"time"
)

// retryBaseDelay is the first backoff interval; it doubles per attempt.
const retryBaseDelay = 300 * time.Millisecond

// DefaultMaxAttempts is the total number of tries for transient failures.
const DefaultMaxAttempts = 3

// retryingProvider decorates a Provider with bounded retries on transient
// failures. Auth failures and other permanent errors surface immediately.
type retryingProvider struct {
	base        Provider
	maxAttempts int
	baseDelay   time.Duration
}

// WithRetry wraps p so transient failures are retried with exponential
// backoff. attempts counts total tries, not just retries; values below one
// are treated as one.
func WithRetry(p Provider, attempts int) Provider {
	if attempts < 1 {
		attempts = 1
	}
	return &retryingProvider{base: p, maxAttempts: attempts, baseDelay: retryBaseDelay}
}

func (r *retryingProvider) Name() string {
	return r.base.Name()
}

func (r *retryingProvider) ValidateConfig() error {
	return r.base.ValidateConfig()
}

// SuggestFilename retries the wrapped provider until it succeeds, fails
// permanently, or runs out of attempts.
func (r *retryingProvider) SuggestFilename(ctx context.Context, req *Request) (*Result, error) {
	var lastErr error
	delay := r.baseDelay
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		res, err := r.base.SuggestFilename(ctx, req)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if attempt == r.maxAttempts || !isRetryable(err) {
			break
		}
		log.Printf("suggest: attempt %d/%d failed, retrying in %v: %v", attempt, r.maxAttempts, delay, err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		delay *= 2
	}
	return nil, lastErr
}

// isRetryable reports whether an error looks transient: server-side
// failures, rate limits and network-level interruptions. Anything else, in
// particular authentication and validation errors, is permanent.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"status 5",
		"status 429",
		"rate limit",
		"timeout",
		"connection reset",
		"connection refused",
		"broken pipe",
		"unexpected eof",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
