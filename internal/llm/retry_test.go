package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func retryConfig() RetryConfig {
	return RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 10 * time.Millisecond, Multiplier: 2.0}
}

func TestRetry_TransientFailures(t *testing.T) {
	down := func() MockResponse {
		return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	}
	ok := MockResponse{Content: json.RawMessage(`{"items":[]}`)}

	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt succeeds", []MockResponse{ok}, false, 1},
		{"outage then success", []MockResponse{down(), ok}, false, 2},
		{"every attempt fails", []MockResponse{down(), down(), down()}, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, retryConfig())

			resp, err := p.Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Generate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && string(resp.Content) != `{"items":[]}` {
				t.Fatalf("unexpected content: %s", resp.Content)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetry_TruncationNotRetried(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"par`)}})
	p := WithRetry(mock, retryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("want ErrMaxTokensExceeded, got %v", err)
	}
	// Rerunning the same prompt against the same ceiling truncates again.
	if mock.CallCount() != 1 {
		t.Fatalf("CallCount() = %d, want 1", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	invalid := MockResponse{Err: &ErrInvalidResponse{
		Content: json.RawMessage(`{"word":"猫"}`),
		Err:     errors.New("missing property 'level'"),
	}}
	mock := NewMockProvider(invalid, invalid)
	p := WithRetry(mock, retryConfig())

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("want a validation error after the one retry")
	}
	// One regeneration (2 calls total), then the loop gives up.
	if mock.CallCount() != 2 {
		t.Fatalf("CallCount() = %d, want 2", mock.CallCount())
	}
}

func TestRetry_ContextCanceled(t *testing.T) {
	down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	mock := NewMockProvider(down, down)
	p := WithRetry(mock, retryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestRetry_HonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{"items":[]}`)},
	)
	p := WithRetry(mock, retryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if string(resp.Content) != `{"items":[]}` {
		t.Fatalf("content = %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("CallCount() = %d, want 2", mock.CallCount())
	}
}

func TestRetry_BackoffBounds(t *testing.T) {
	r := &RetryProvider{next: NewMockProvider(), config: retryConfig()}
	cause := &ErrProviderUnavailable{Err: errors.New("down")}

	// First attempt: InitialWait with 20% jitter either way.
	for range 20 {
		w := r.backoff(0, cause)
		if w < 800*time.Microsecond || w > 1200*time.Microsecond {
			t.Fatalf("attempt 0 backoff = %v, want within 20%% of 1ms", w)
		}
	}

	// Deep attempt: exponential growth capped at MaxWait before jitter.
	for range 20 {
		w := r.backoff(10, cause)
		if w < 8*time.Millisecond || w > 12*time.Millisecond {
			t.Fatalf("attempt 10 backoff = %v, want within 20%% of MaxWait", w)
		}
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), retryConfig())
	if got := p.ModelID(); got != "mock" {
		t.Fatalf("ModelID() = %q, want mock", got)
	}
}
