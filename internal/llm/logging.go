package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/convolab/lessonsmith/internal/store"
)

// LoggingProvider records every provider call as an audit event: purpose,
// token usage, latency, and the full request and response bodies.
type LoggingProvider struct {
	next   Provider
	name   string
	events store.EventRepo
}

// WithLogging wraps a Provider with audit event logging. name is the
// vendor label recorded on each event ("anthropic", "openai", ...), kept
// separate from the model ID that served the call.
func WithLogging(p Provider, name string, repo store.EventRepo) Provider {
	return &LoggingProvider{next: p, name: name, events: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.next.Generate(ctx, req)

	data := l.buildEvent(ctx, req, resp, err, time.Since(start).Milliseconds())

	// A failed audit write never fails the request itself.
	if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.next.ModelID()
}

func (l *LoggingProvider) buildEvent(ctx context.Context, req Request, resp *Response, err error, latencyMs int64) store.LLMRequestEventData {
	data := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.next.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}
	return data
}

// serializeRequest renders the request as labeled plain text so the llm
// view command can print it readably.
func serializeRequest(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
