package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// In-memory databases report journal_mode "memory" whatever
		// was asked for; TestFileDBUsesWAL checks WAL on a real file.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDBUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open file store: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want %q", mode, "wal")
	}
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "override.db")
	t.Setenv("LESSONSMITH_DB", want)

	got, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("default db path: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"llm_request_events", "pipeline_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"phrase-decompose", "sentence-split", "vocab-extract"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-sonnet-4-5",
			Purpose:      purpose,
			InputTokens:  100,
			OutputTokens: 40,
			LatencyMs:    250,
			Success:      true,
			RequestBody:  "[user]\nhello",
			ResponseBody: `{"ok":true}`,
		})
		if err != nil {
			t.Fatalf("append %s: %v", purpose, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].Purpose != "vocab-extract" {
		t.Errorf("events[0].Purpose = %q, want %q", events[0].Purpose, "vocab-extract")
	}
	if events[0].Sequence != 3 {
		t.Errorf("events[0].Sequence = %d, want 3", events[0].Sequence)
	}

	e := events[2]
	if e.Provider != "anthropic" {
		t.Errorf("provider = %q, want %q", e.Provider, "anthropic")
	}
	if e.InputTokens != 100 || e.OutputTokens != 40 {
		t.Errorf("tokens = %d/%d, want 100/40", e.InputTokens, e.OutputTokens)
	}
	if e.LatencyMs != 250 {
		t.Errorf("latency = %d, want 250", e.LatencyMs)
	}
	if !e.Success {
		t.Error("expected success = true")
	}
	if e.RequestBody != "[user]\nhello" {
		t.Errorf("request body = %q", e.RequestBody)
	}
	if e.ResponseBody != `{"ok":true}` {
		t.Errorf("response body = %q", e.ResponseBody)
	}
	if e.Timestamp.IsZero() {
		t.Error("expected non-zero timestamp")
	}
}

func TestQueryLLMEventsLimitAndWindow(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "openai", Model: "gpt-5", Purpose: "pi-generate", Success: true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("got %d events, want 2", len(limited))
	}
	if limited[0].Sequence != 5 || limited[1].Sequence != 4 {
		t.Errorf("sequences = %d,%d, want 5,4", limited[0].Sequence, limited[1].Sequence)
	}

	window, err := repo.QueryLLMEvents(ctx, QueryOpts{After: 2, Before: 5})
	if err != nil {
		t.Fatalf("query window: %v", err)
	}
	if len(window) != 2 {
		t.Fatalf("got %d events in window, want 2", len(window))
	}
	if window[0].Sequence != 4 || window[1].Sequence != 3 {
		t.Errorf("window sequences = %d,%d, want 4,3", window[0].Sequence, window[1].Sequence)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "gemini",
		Model:        "gemini-2.5-pro",
		Purpose:      "sentence-split",
		Success:      false,
		ErrorMessage: "timeout",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected non-nil event")
	}
	if e.ErrorMessage != "timeout" {
		t.Errorf("error message = %q, want %q", e.ErrorMessage, "timeout")
	}
	if e.Success {
		t.Error("expected success = false")
	}
}

func TestGetLLMEventMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	e, err := repo.GetLLMEvent(context.Background(), 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if e != nil {
		t.Fatalf("expected nil for missing event, got %+v", e)
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m", Purpose: "vocab-extract", InputTokens: 100, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "vocab-extract", InputTokens: 50, OutputTokens: 10, LatencyMs: 200, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "pi-generate", InputTokens: 500, OutputTokens: 200, LatencyMs: 300, Success: true},
	}
	for i, data := range appends {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d rows, want 2", len(stats))
	}

	// Busiest purpose first.
	ve := stats[0]
	if ve.Purpose != "vocab-extract" {
		t.Fatalf("stats[0].Purpose = %q, want %q", ve.Purpose, "vocab-extract")
	}
	if ve.Calls != 2 {
		t.Errorf("calls = %d, want 2", ve.Calls)
	}
	if ve.InputTokens != 150 || ve.OutputTokens != 30 {
		t.Errorf("tokens = %d/%d, want 150/30", ve.InputTokens, ve.OutputTokens)
	}
	if ve.AvgLatencyMs != 150 {
		t.Errorf("avg latency = %d, want 150", ve.AvgLatencyMs)
	}

	pg := stats[1]
	if pg.Purpose != "pi-generate" || pg.Calls != 1 || pg.AvgLatencyMs != 300 {
		t.Errorf("stats[1] = %+v, want pi-generate with 1 call at 300ms", pg)
	}
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	appends := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "pi-generate", InputTokens: 10, OutputTokens: 5, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "vocab-extract", InputTokens: 10, OutputTokens: 5, Success: true},
		{Provider: "openai", Model: "gpt-5", Purpose: "vocab-extract", InputTokens: 7, OutputTokens: 3, Success: true},
	}
	for i, data := range appends {
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d rows, want 2", len(stats))
	}
	if stats[0].Model != "claude-sonnet-4-5" || stats[0].Calls != 2 {
		t.Errorf("stats[0] = %+v, want claude-sonnet-4-5 with 2 calls", stats[0])
	}
	if stats[0].InputTokens != 20 || stats[0].OutputTokens != 10 {
		t.Errorf("tokens = %d/%d, want 20/10", stats[0].InputTokens, stats[0].OutputTokens)
	}
	if stats[1].Model != "gpt-5" || stats[1].Calls != 1 {
		t.Errorf("stats[1] = %+v, want gpt-5 with 1 call", stats[1])
	}
}

func TestPipelineEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Interleave with an LLM event so the global sequence spans both tables.
	appends := []PipelineEventData{
		{LessonID: "lesson-a", Stage: StageCoreSelect, Outcome: OutcomeOK, ItemCount: 12},
		{LessonID: "lesson-a", Stage: StageBackbuild, Outcome: OutcomeDegraded, Detail: "batch decompose failed", ItemCount: 12},
		{LessonID: "lesson-b", Stage: StageCoreSelect, Outcome: OutcomeOK, ItemCount: 8},
	}
	if err := repo.AppendPipelineEvent(ctx, appends[0]); err != nil {
		t.Fatalf("append: %v", err)
	}
	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "m", Purpose: "phrase-decompose", Success: false,
	})
	if err != nil {
		t.Fatalf("append llm: %v", err)
	}
	for _, data := range appends[1:] {
		if err := repo.AppendPipelineEvent(ctx, data); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryPipelineEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d events, want 3", len(all))
	}
	// Newest first, and sequence 2 went to the interleaved LLM event.
	if all[0].LessonID != "lesson-b" || all[0].Sequence != 4 {
		t.Errorf("all[0] = %s seq %d, want lesson-b seq 4", all[0].LessonID, all[0].Sequence)
	}

	forA, err := repo.PipelineEventsForLesson(ctx, "lesson-a")
	if err != nil {
		t.Fatalf("query lesson-a: %v", err)
	}
	if len(forA) != 2 {
		t.Fatalf("got %d events for lesson-a, want 2", len(forA))
	}
	// Execution order.
	if forA[0].Stage != StageCoreSelect || forA[1].Stage != StageBackbuild {
		t.Errorf("stages = %s,%s, want core_select,backbuild", forA[0].Stage, forA[1].Stage)
	}
	if forA[1].Outcome != OutcomeDegraded {
		t.Errorf("outcome = %q, want %q", forA[1].Outcome, OutcomeDegraded)
	}
	if forA[1].Detail != "batch decompose failed" {
		t.Errorf("detail = %q", forA[1].Detail)
	}
	if forA[0].ItemCount != 12 {
		t.Errorf("item count = %d, want 12", forA[0].ItemCount)
	}
}
