package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// retryClass says how the retry loop treats a failure.
type retryClass int

const (
	// retryNo ends the loop. Caller cancellation is final, and a
	// truncated response means MaxTokens is set too low for the
	// requested output, not that the provider hiccupped.
	retryNo retryClass = iota

	// retryAlways covers rate limits, provider outages, and transport
	// errors. These clear on their own.
	retryAlways

	// retryOnce covers schema-invalid responses. One regeneration is
	// worth a shot; a second failure means the prompt and schema
	// disagree and more attempts just burn tokens.
	retryOnce
)

func classifyRetry(err error) retryClass {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return retryNo
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return retryNo
	}

	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		return retryOnce
	}

	return retryAlways
}

// RetryProvider wraps another Provider and retries transient failures
// with exponential backoff and jitter.
type RetryProvider struct {
	next   Provider
	config RetryConfig
}

// WithRetry decorates p with the retry policy in cfg.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{next: p, config: cfg}
}

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidRetried := false

	for attempt := range r.config.MaxAttempts {
		resp, err := r.next.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		switch classifyRetry(err) {
		case retryNo:
			return nil, err
		case retryOnce:
			if invalidRetried {
				return nil, err
			}
			invalidRetried = true
		}

		// No sleep after the final attempt.
		if attempt == r.config.MaxAttempts-1 {
			break
		}
		if err := r.sleep(ctx, r.backoff(attempt, err)); err != nil {
			return nil, err
		}
	}

	return nil, lastErr
}

func (r *RetryProvider) ModelID() string {
	return r.next.ModelID()
}

func (r *RetryProvider) sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// backoff computes the wait before the next attempt.
func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	// A provider-supplied RetryAfter wins over computed backoff.
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := math.Min(
		float64(r.config.InitialWait)*math.Pow(r.config.Multiplier, float64(attempt)),
		float64(r.config.MaxWait),
	)

	// Jitter spreads concurrent retries over a window of 80% to 120%
	// of the computed wait.
	wait *= 0.8 + 0.4*rand.Float64()

	return time.Duration(wait)
}
