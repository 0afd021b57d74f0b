package store

import (
	"context"
	"fmt"

	"github.com/convolab/lessonsmith/ent"
	"github.com/convolab/lessonsmith/ent/pipelineevent"
)

func (r *eventRepo) AppendPipelineEvent(ctx context.Context, data PipelineEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PipelineEvent.Create().
		SetSequence(seqNum).
		SetLessonID(data.LessonID).
		SetStage(data.Stage).
		SetOutcome(data.Outcome).
		SetDetail(data.Detail).
		SetItemCount(data.ItemCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save pipeline event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryPipelineEvents(ctx context.Context, opts QueryOpts) ([]PipelineEventRecord, error) {
	q := r.client.PipelineEvent.Query().
		Order(ent.Desc(pipelineevent.FieldSequence))

	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.After > 0 {
		q = q.Where(pipelineevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(pipelineevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(pipelineevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(pipelineevent.TimestampLTE(opts.To))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pipeline events: %w", err)
	}

	records := make([]PipelineEventRecord, len(rows))
	for i, row := range rows {
		records[i] = pipelineRecord(row)
	}
	return records, nil
}

func (r *eventRepo) PipelineEventsForLesson(ctx context.Context, lessonID string) ([]PipelineEventRecord, error) {
	rows, err := r.client.PipelineEvent.Query().
		Where(pipelineevent.LessonID(lessonID)).
		Order(ent.Asc(pipelineevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pipeline events for lesson %s: %w", lessonID, err)
	}

	records := make([]PipelineEventRecord, len(rows))
	for i, row := range rows {
		records[i] = pipelineRecord(row)
	}
	return records, nil
}

func pipelineRecord(row *ent.PipelineEvent) PipelineEventRecord {
	return PipelineEventRecord{
		ID:        row.ID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		LessonID:  row.LessonID,
		Stage:     row.Stage,
		Outcome:   row.Outcome,
		Detail:    row.Detail,
		ItemCount: row.ItemCount,
	}
}
