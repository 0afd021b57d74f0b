package lessongen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/convolab/lessonsmith/internal/content"
	"github.com/convolab/lessonsmith/internal/corephrase"
	"github.com/convolab/lessonsmith/internal/lang"
	"github.com/convolab/lessonsmith/internal/llm"
	"github.com/convolab/lessonsmith/internal/readings"
	"github.com/convolab/lessonsmith/internal/store"
)

// fakeEvents implements store.EventRepo, capturing pipeline appends.
type fakeEvents struct {
	pipeline  []store.PipelineEventData
	llm       []store.LLMRequestEventData
	appendErr error
}

func (f *fakeEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.llm = append(f.llm, data)
	return nil
}

func (f *fakeEvents) AppendPipelineEvent(_ context.Context, data store.PipelineEventData) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.pipeline = append(f.pipeline, data)
	return nil
}

func (f *fakeEvents) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (f *fakeEvents) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsageByPurpose(_ context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func (f *fakeEvents) QueryPipelineEvents(_ context.Context, _ store.QueryOpts) ([]store.PipelineEventRecord, error) {
	return nil, nil
}

func (f *fakeEvents) PipelineEventsForLesson(_ context.Context, _ string) ([]store.PipelineEventRecord, error) {
	return nil, nil
}

// fakeReporter implements jobs.Reporter, capturing every call.
type fakeReporter struct {
	started    int
	progresses []int
	notes      []string
	done       []error
}

func (f *fakeReporter) Start(context.Context) error { f.started++; return nil }

func (f *fakeReporter) Progress(_ context.Context, pct int, note string) error {
	f.progresses = append(f.progresses, pct)
	f.notes = append(f.notes, note)
	return nil
}

func (f *fakeReporter) Done(_ context.Context, err error) error {
	f.done = append(f.done, err)
	return nil
}

func testSentences() []content.Sentence {
	return []content.Sentence{
		{ID: "s1", Speaker: "Tanaka", Text: "おはようございます。", Translation: "Good morning."},
		{ID: "s2", Speaker: "Sato", Text: "昨日レストランに行きました。", Translation: "I went to a restaurant yesterday."},
		{ID: "s3", Speaker: "Tanaka", Text: "そうですか。", Translation: "Is that so."},
	}
}

// The three-sentence fixture selects one core item, so the provider sees
// one decompose call and then one vocabulary call.
func decomposeResponse() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{
		"0": [
			{"text": "ございます。", "translation": ""},
			{"text": "おはようございます。", "translation": "Good morning."}
		]
	}`)}
}

func vocabResponse() llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(`{
		"0": [{"word": "おはよう", "translation": "good morning"}],
		"1": [{"word": "レストラン", "translation": "restaurant"}]
	}`)}
}

func testParams() AssembleParams {
	return AssembleParams{
		Sentences:       testSentences(),
		Lang:            lang.Japanese,
		Title:           "Morning Greetings",
		DurationMinutes: 3,
	}
}

func testConfig() Config {
	return Config{MinCoreItems: 1, MaxCoreItems: 1}
}

func TestAssemble(t *testing.T) {
	mock := llm.NewMockProvider(decomposeResponse(), vocabResponse())
	a := New(mock, nil, nil, nil, nil, testConfig())

	lesson, err := a.Assemble(context.Background(), testParams())
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("CallCount = %d, want 2 (decompose + vocab)", mock.CallCount())
	}

	if lesson.ID == "" {
		t.Error("expected non-empty lesson ID")
	}
	if lesson.Language != lang.Japanese || lesson.Title != "Morning Greetings" {
		t.Errorf("lesson header = %s %q", lesson.Language, lesson.Title)
	}
	if lesson.DurationMinutes != 3 {
		t.Errorf("duration = %v, want 3", lesson.DurationMinutes)
	}
	if lesson.CreatedAt.IsZero() {
		t.Error("expected non-zero CreatedAt")
	}

	if len(lesson.CoreItems) != 1 {
		t.Fatalf("core items = %d, want 1", len(lesson.CoreItems))
	}
	if len(lesson.CoreItems[0].Components) != 2 {
		t.Errorf("components = %d, want 2", len(lesson.CoreItems[0].Components))
	}

	// 3 minutes at 90 seconds per exchange keeps 2 of 3 sentences.
	if len(lesson.Exchanges) != 2 {
		t.Fatalf("exchanges = %d, want 2", len(lesson.Exchanges))
	}
	if lesson.Exchanges[0].Order != 0 || lesson.Exchanges[1].Order != 1 {
		t.Errorf("orders = %d,%d, want 0,1", lesson.Exchanges[0].Order, lesson.Exchanges[1].Order)
	}
	if len(lesson.Exchanges[1].Vocabulary) != 1 {
		t.Errorf("exchange 1 vocabulary = %d, want 1", len(lesson.Exchanges[1].Vocabulary))
	}
	if len(lesson.Voices) != 2 {
		t.Errorf("voices = %d, want one per speaker", len(lesson.Voices))
	}
}

func TestAssembleRecordsStageEvents(t *testing.T) {
	mock := llm.NewMockProvider(decomposeResponse(), vocabResponse())
	events := &fakeEvents{}
	a := New(mock, nil, events, nil, nil, testConfig())

	lesson, err := a.Assemble(context.Background(), testParams())
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	wantStages := []string{
		store.StageCoreSelect,
		store.StageBackbuild,
		store.StageExchangeSplit,
		store.StageVocab,
	}
	if len(events.pipeline) != len(wantStages) {
		t.Fatalf("recorded %d events, want %d", len(events.pipeline), len(wantStages))
	}
	for i, ev := range events.pipeline {
		if ev.Stage != wantStages[i] {
			t.Errorf("event %d stage = %q, want %q", i, ev.Stage, wantStages[i])
		}
		if ev.Outcome != store.OutcomeOK {
			t.Errorf("event %d outcome = %q, want ok", i, ev.Outcome)
		}
		if ev.LessonID != lesson.ID {
			t.Errorf("event %d lesson = %q, want %q", i, ev.LessonID, lesson.ID)
		}
	}
	if events.pipeline[2].ItemCount != 2 {
		t.Errorf("exchange_split count = %d, want 2", events.pipeline[2].ItemCount)
	}
	if events.pipeline[3].ItemCount != 2 {
		t.Errorf("vocab count = %d, want 2", events.pipeline[3].ItemCount)
	}
}

func TestAssembleReportsProgress(t *testing.T) {
	mock := llm.NewMockProvider(decomposeResponse(), vocabResponse())
	rep := &fakeReporter{}
	a := New(mock, nil, nil, rep, nil, testConfig())

	if _, err := a.Assemble(context.Background(), testParams()); err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if rep.started != 1 {
		t.Errorf("started = %d, want 1", rep.started)
	}
	want := []int{20, 40, 60, 75}
	if len(rep.progresses) != len(want) {
		t.Fatalf("progress calls = %v, want %v", rep.progresses, want)
	}
	for i, pct := range want {
		if rep.progresses[i] != pct {
			t.Errorf("progress[%d] = %d, want %d", i, rep.progresses[i], pct)
		}
	}
	if len(rep.done) != 1 || rep.done[0] != nil {
		t.Errorf("done = %v, want one nil completion", rep.done)
	}
}

func TestAssembleDegradedBackbuild(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("service down")},
		vocabResponse(),
	)
	events := &fakeEvents{}
	a := New(mock, nil, events, nil, nil, testConfig())

	lesson, err := a.Assemble(context.Background(), testParams())
	if err != nil {
		t.Fatalf("degradation must not fail the build: %v", err)
	}

	if len(lesson.CoreItems[0].Components) != 1 {
		t.Errorf("components = %d, want whole-phrase fallback", len(lesson.CoreItems[0].Components))
	}

	bb := events.pipeline[1]
	if bb.Stage != store.StageBackbuild || bb.Outcome != store.OutcomeDegraded {
		t.Fatalf("event 1 = %s/%s, want backbuild/degraded", bb.Stage, bb.Outcome)
	}
	if !strings.Contains(bb.Detail, "kept whole") {
		t.Errorf("detail = %q, want fallback note", bb.Detail)
	}
}

func TestAssembleAuditFailureDoesNotBlock(t *testing.T) {
	mock := llm.NewMockProvider(decomposeResponse(), vocabResponse())
	events := &fakeEvents{appendErr: errors.New("database is locked")}
	a := New(mock, nil, events, nil, nil, testConfig())

	lesson, err := a.Assemble(context.Background(), testParams())
	if err != nil {
		t.Fatalf("audit outage must not fail the build: %v", err)
	}
	if len(lesson.Exchanges) != 2 {
		t.Errorf("exchanges = %d, want 2", len(lesson.Exchanges))
	}
}

func TestAssembleEmptyDialogue(t *testing.T) {
	mock := llm.NewMockProvider()
	events := &fakeEvents{}
	rep := &fakeReporter{}
	a := New(mock, nil, events, rep, nil, testConfig())

	_, err := a.Assemble(context.Background(), AssembleParams{Lang: lang.Japanese})
	if !errors.Is(err, corephrase.ErrEmptyDialogue) {
		t.Fatalf("err = %v, want ErrEmptyDialogue", err)
	}

	if len(events.pipeline) != 1 {
		t.Fatalf("recorded %d events, want 1", len(events.pipeline))
	}
	if events.pipeline[0].Stage != store.StageCoreSelect || events.pipeline[0].Outcome != store.OutcomeFailed {
		t.Errorf("event = %s/%s, want core_select/failed", events.pipeline[0].Stage, events.pipeline[0].Outcome)
	}
	if len(rep.done) != 1 || rep.done[0] == nil {
		t.Errorf("done = %v, want one failed completion", rep.done)
	}
	if mock.CallCount() != 0 {
		t.Errorf("CallCount = %d, want 0", mock.CallCount())
	}
}

func TestAssembleAnnotatesReadings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{
			"kanji":    req.Text,
			"kana":     "かな",
			"furigana": req.Text + "[よみ]",
		})
	}))
	defer server.Close()

	annotator := readings.NewAnnotator(
		readings.NewFuriganaClient(readings.WithBaseURL(server.URL)),
		readings.NewPinyinClient(),
		nil,
	)

	mock := llm.NewMockProvider(decomposeResponse(), vocabResponse())
	events := &fakeEvents{}
	a := New(mock, annotator, events, nil, nil, testConfig())

	lesson, err := a.Assemble(context.Background(), testParams())
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if !strings.HasSuffix(lesson.CoreItems[0].Reading, "[よみ]") {
		t.Errorf("core item reading = %q, want furigana suffix", lesson.CoreItems[0].Reading)
	}
	if !strings.HasSuffix(lesson.Exchanges[0].Reading, "[よみ]") {
		t.Errorf("exchange reading = %q, want furigana suffix", lesson.Exchanges[0].Reading)
	}

	last := events.pipeline[len(events.pipeline)-1]
	if last.Stage != store.StageReadings || last.Outcome != store.OutcomeOK {
		t.Errorf("last event = %s/%s, want readings/ok", last.Stage, last.Outcome)
	}
	if last.ItemCount != 3 {
		t.Errorf("readings count = %d, want 3 (1 item + 2 exchanges)", last.ItemCount)
	}
}

func TestAssembleReadingsSidecarDownDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	annotator := readings.NewAnnotator(
		readings.NewFuriganaClient(readings.WithBaseURL(server.URL)),
		readings.NewPinyinClient(),
		nil,
	)

	mock := llm.NewMockProvider(decomposeResponse(), vocabResponse())
	events := &fakeEvents{}
	a := New(mock, annotator, events, nil, nil, testConfig())

	lesson, err := a.Assemble(context.Background(), testParams())
	if err != nil {
		t.Fatalf("sidecar outage must not fail the build: %v", err)
	}
	if lesson.CoreItems[0].Reading != "" {
		t.Errorf("reading = %q, want empty on outage", lesson.CoreItems[0].Reading)
	}

	last := events.pipeline[len(events.pipeline)-1]
	if last.Stage != store.StageReadings || last.Outcome != store.OutcomeDegraded {
		t.Errorf("last event = %s/%s, want readings/degraded", last.Stage, last.Outcome)
	}
}

func TestBuildCoreItems(t *testing.T) {
	mock := llm.NewMockProvider(decomposeResponse())
	events := &fakeEvents{}
	a := New(mock, nil, events, nil, nil, DefaultConfig())

	items, err := a.BuildCoreItems(context.Background(), testSentences(), lang.Japanese, 1, 1)
	if err != nil {
		t.Fatalf("build core items: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if len(items[0].Components) != 2 {
		t.Errorf("components = %d, want 2", len(items[0].Components))
	}
	// Core-item builds run outside a lesson and leave no audit trail.
	if len(events.pipeline) != 0 {
		t.Errorf("recorded %d events, want 0", len(events.pipeline))
	}
}

func TestBuildCoreItemsEmptyInput(t *testing.T) {
	a := New(llm.NewMockProvider(), nil, nil, nil, nil, DefaultConfig())

	_, err := a.BuildCoreItems(context.Background(), nil, lang.Japanese, 1, 5)
	if !errors.Is(err, corephrase.ErrEmptyDialogue) {
		t.Fatalf("err = %v, want ErrEmptyDialogue", err)
	}
}
