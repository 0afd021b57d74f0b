package store

import (
	"context"
	"time"
)

// QueryOpts narrows an event query by sequence window, time window,
// and row count.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Pipeline stage labels recorded by the lesson assembler.
const (
	StageCoreSelect    = "core_select"
	StageBackbuild     = "backbuild"
	StageExchangeSplit = "exchange_split"
	StageVocab         = "vocab"
	StagePIGenerate    = "pi_generate"
	StageReadings      = "readings"
)

// Pipeline stage outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeDegraded = "degraded"
	OutcomeFailed   = "failed"
)

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event as returned by queries.
type LLMRequestEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PipelineEventData captures the outcome of one pipeline stage. LessonID
// is the correlation key: the lesson ID, or the grammar point ID for
// exercise generation events.
type PipelineEventData struct {
	LessonID  string
	Stage     string
	Outcome   string
	Detail    string
	ItemCount int
}

// PipelineEventRecord is a stored pipeline event as returned by queries.
type PipelineEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LessonID  string
	Stage     string
	Outcome   string
	Detail    string
	ItemCount int
}

// PurposeUsage aggregates LLM usage for one purpose label.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM usage for one model ID.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest writes one audit row for a provider call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single event by ID, or nil if it doesn't exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose label,
	// busiest purposes first.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model ID,
	// busiest models first.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)

	// AppendPipelineEvent records the outcome of one pipeline stage.
	AppendPipelineEvent(ctx context.Context, data PipelineEventData) error

	// QueryPipelineEvents returns pipeline events, newest first.
	QueryPipelineEvents(ctx context.Context, opts QueryOpts) ([]PipelineEventRecord, error)

	// PipelineEventsForLesson returns all stage events for one lesson in
	// execution order.
	PipelineEventsForLesson(ctx context.Context, lessonID string) ([]PipelineEventRecord, error)
}
