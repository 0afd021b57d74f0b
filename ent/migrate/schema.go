// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PipelineEventsColumns holds the columns for the "pipeline_events" table.
	PipelineEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "lesson_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "outcome", Type: field.TypeString},
		{Name: "detail", Type: field.TypeString, Default: ""},
		{Name: "item_count", Type: field.TypeInt, Default: 0},
	}
	// PipelineEventsTable holds the schema information for the "pipeline_events" table.
	PipelineEventsTable = &schema.Table{
		Name:       "pipeline_events",
		Columns:    PipelineEventsColumns,
		PrimaryKey: []*schema.Column{PipelineEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelineevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PipelineEventsColumns[1]},
			},
			{
				Name:    "pipelineevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PipelineEventsColumns[2]},
			},
			{
				Name:    "pipelineevent_lesson_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineEventsColumns[3]},
			},
			{
				Name:    "pipelineevent_stage",
				Unique:  false,
				Columns: []*schema.Column{PipelineEventsColumns[4]},
			},
			{
				Name:    "pipelineevent_outcome",
				Unique:  false,
				Columns: []*schema.Column{PipelineEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		PipelineEventsTable,
	}
)

func init() {
}
