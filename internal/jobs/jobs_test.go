package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestPhase(t *testing.T) {
	tests := []struct {
		progress int
		want     string
	}{
		{0, "early"},
		{32, "early"},
		{33, "mid"},
		{50, "mid"},
		{65, "mid"},
		{66, "late"},
		{100, "late"},
	}
	for _, tt := range tests {
		if got := Phase(tt.progress); got != tt.want {
			t.Errorf("Phase(%d) = %q, want %q", tt.progress, got, tt.want)
		}
	}
}

func TestStatus_Terminal(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, false},
		{StatusRunning, false},
		{StatusSucceeded, true},
		{StatusFailed, true},
	}
	for _, tt := range tests {
		if got := tt.status.Terminal(); got != tt.want {
			t.Errorf("%s.Terminal() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestPoller_WaitUntilTerminal(t *testing.T) {
	sequence := []Status{StatusPending, StatusRunning, StatusRunning, StatusSucceeded}
	calls := 0
	p := &Poller{Fetch: func(context.Context) (Status, error) {
		s := sequence[calls]
		calls++
		return s, nil
	}}

	got, err := p.Wait(context.Background(), time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != StatusSucceeded {
		t.Errorf("status = %q", got)
	}
	if calls != 4 {
		t.Errorf("expected 4 fetches, got %d", calls)
	}
}

func TestPoller_WaitReturnsFailedStatus(t *testing.T) {
	p := &Poller{Fetch: func(context.Context) (Status, error) {
		return StatusFailed, nil
	}}

	got, err := p.Wait(context.Background(), time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != StatusFailed {
		t.Errorf("status = %q", got)
	}
}

func TestPoller_FetchError(t *testing.T) {
	cause := errors.New("job system down")
	p := &Poller{Fetch: func(context.Context) (Status, error) {
		return "", cause
	}}

	_, err := p.Wait(context.Background(), time.Millisecond)
	if !errors.Is(err, cause) {
		t.Errorf("expected fetch error, got %v", err)
	}
}

func TestPoller_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Poller{Fetch: func(context.Context) (Status, error) {
		cancel() // job never finishes; caller gives up
		return StatusRunning, nil
	}}

	_, err := p.Wait(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestReporters(t *testing.T) {
	ctx := context.Background()

	var nop NopReporter
	if err := nop.Start(ctx); err != nil {
		t.Errorf("nop start: %v", err)
	}
	if err := nop.Progress(ctx, 50, "halfway"); err != nil {
		t.Errorf("nop progress: %v", err)
	}
	if err := nop.Done(ctx, nil); err != nil {
		t.Errorf("nop done: %v", err)
	}

	log := &LogReporter{Logger: zap.NewNop()}
	if err := log.Start(ctx); err != nil {
		t.Errorf("log start: %v", err)
	}
	if err := log.Progress(ctx, 80, "assembling"); err != nil {
		t.Errorf("log progress: %v", err)
	}
	if err := log.Done(ctx, errors.New("boom")); err != nil {
		t.Errorf("log done: %v", err)
	}
}
