// Package jobs consumes the external job system's status contract. The
// pipeline reports progress through a Reporter; callers poll a job until
// it reaches a terminal status. The job system itself lives elsewhere.
package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Status is a job's lifecycle state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Phase buckets a 0-100 progress value into the three coarse phases the
// job UI displays.
func Phase(progress int) string {
	switch {
	case progress < 33:
		return "early"
	case progress < 66:
		return "mid"
	default:
		return "late"
	}
}

// Reporter receives pipeline progress. Implementations decide where it
// goes: the job system, a log, or nowhere.
type Reporter interface {
	// Start marks the job running. Called once, before any Progress.
	Start(ctx context.Context) error

	// Progress reports completion percentage with a short note.
	Progress(ctx context.Context, pct int, note string) error

	// Done marks the job succeeded or failed. Called once, last.
	Done(ctx context.Context, err error) error
}

// NopReporter discards all progress. The zero value is ready to use.
type NopReporter struct{}

func (NopReporter) Start(context.Context) error                 { return nil }
func (NopReporter) Progress(context.Context, int, string) error { return nil }
func (NopReporter) Done(context.Context, error) error           { return nil }

// LogReporter writes progress to a logger. The CLI uses it when no job
// system is attached.
type LogReporter struct {
	Logger *zap.Logger
}

func (r *LogReporter) Start(context.Context) error {
	r.Logger.Info("job started")
	return nil
}

func (r *LogReporter) Progress(_ context.Context, pct int, note string) error {
	r.Logger.Info("job progress",
		zap.Int("pct", pct),
		zap.String("phase", Phase(pct)),
		zap.String("note", note))
	return nil
}

func (r *LogReporter) Done(_ context.Context, err error) error {
	if err != nil {
		r.Logger.Error("job failed", zap.Error(err))
		return nil
	}
	r.Logger.Info("job finished")
	return nil
}

// StatusFunc fetches a job's current status.
type StatusFunc func(ctx context.Context) (Status, error)

// Poller watches a job until it reaches a terminal status.
type Poller struct {
	Fetch StatusFunc
}

// Wait polls at the given interval until the job reaches a terminal
// status, a fetch fails, or the context is done. The first fetch happens
// immediately.
func (p *Poller) Wait(ctx context.Context, interval time.Duration) (Status, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := p.Fetch(ctx)
		if err != nil {
			return "", err
		}
		if status.Terminal() {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-ticker.C:
		}
	}
}
