// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/convolab/lessonsmith/ent/llmrequestevent"
	"github.com/convolab/lessonsmith/ent/pipelineevent"
	"github.com/convolab/lessonsmith/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescSequence is the schema descriptor for sequence field.
	llmrequesteventDescSequence := llmrequesteventMixinFields0[0].Descriptor()
	// llmrequestevent.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	llmrequestevent.SequenceValidator = llmrequesteventDescSequence.Validators[0].(func(int64) error)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	pipelineeventMixin := schema.PipelineEvent{}.Mixin()
	pipelineeventMixinFields0 := pipelineeventMixin[0].Fields()
	_ = pipelineeventMixinFields0
	pipelineeventFields := schema.PipelineEvent{}.Fields()
	_ = pipelineeventFields
	// pipelineeventDescSequence is the schema descriptor for sequence field.
	pipelineeventDescSequence := pipelineeventMixinFields0[0].Descriptor()
	// pipelineevent.SequenceValidator is a validator for the "sequence" field. It is called by the builders before save.
	pipelineevent.SequenceValidator = pipelineeventDescSequence.Validators[0].(func(int64) error)
	// pipelineeventDescTimestamp is the schema descriptor for timestamp field.
	pipelineeventDescTimestamp := pipelineeventMixinFields0[1].Descriptor()
	// pipelineevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pipelineevent.DefaultTimestamp = pipelineeventDescTimestamp.Default.(func() time.Time)
	// pipelineeventDescLessonID is the schema descriptor for lesson_id field.
	pipelineeventDescLessonID := pipelineeventFields[0].Descriptor()
	// pipelineevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	pipelineevent.LessonIDValidator = pipelineeventDescLessonID.Validators[0].(func(string) error)
	// pipelineeventDescStage is the schema descriptor for stage field.
	pipelineeventDescStage := pipelineeventFields[1].Descriptor()
	// pipelineevent.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	pipelineevent.StageValidator = pipelineeventDescStage.Validators[0].(func(string) error)
	// pipelineeventDescOutcome is the schema descriptor for outcome field.
	pipelineeventDescOutcome := pipelineeventFields[2].Descriptor()
	// pipelineevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	pipelineevent.OutcomeValidator = pipelineeventDescOutcome.Validators[0].(func(string) error)
	// pipelineeventDescDetail is the schema descriptor for detail field.
	pipelineeventDescDetail := pipelineeventFields[3].Descriptor()
	// pipelineevent.DefaultDetail holds the default value on creation for the detail field.
	pipelineevent.DefaultDetail = pipelineeventDescDetail.Default.(string)
	// pipelineeventDescItemCount is the schema descriptor for item_count field.
	pipelineeventDescItemCount := pipelineeventFields[4].Descriptor()
	// pipelineevent.DefaultItemCount holds the default value on creation for the item_count field.
	pipelineevent.DefaultItemCount = pipelineeventDescItemCount.Default.(int)
}
