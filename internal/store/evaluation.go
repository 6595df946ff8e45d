package store

import (
	"context"
	"fmt"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/evaluationevent"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/section"
)

type evaluationRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *evaluationRepo) Append(ctx context.Context, e Evaluation) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.EvaluationEvent.Create().
		SetSequence(seqNum).
		SetSessionID(e.SessionID).
		SetSection(string(e.Section)).
		SetTaskRef(e.TaskRef).
		SetIdempotencyKey(e.IdempotencyKey).
		SetBand(e.Band).
		SetFeedback(e.Feedback).
		SetModel(e.Model)
	if len(e.Criteria) > 0 {
		builder = builder.SetCriteria(e.Criteria)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("save evaluation event: %w", err)
	}
	return nil
}

func (r *evaluationRepo) ByKey(ctx context.Context, idempotencyKey string) (*Evaluation, error) {
	row, err := r.client.EvaluationEvent.Query().
		Where(evaluationevent.IdempotencyKey(idempotencyKey)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query evaluation by key: %w", err)
	}
	return evaluationFromEnt(row), nil
}

func (r *evaluationRepo) BySession(ctx context.Context, sessionID string) ([]*Evaluation, error) {
	rows, err := r.client.EvaluationEvent.Query().
		Where(evaluationevent.SessionID(sessionID)).
		Order(ent.Asc(evaluationevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query evaluations: %w", err)
	}

	out := make([]*Evaluation, len(rows))
	for i, row := range rows {
		out[i] = evaluationFromEnt(row)
	}
	return out, nil
}

func evaluationFromEnt(row *ent.EvaluationEvent) *Evaluation {
	return &Evaluation{
		Sequence:       row.Sequence,
		Timestamp:      row.Timestamp,
		SessionID:      row.SessionID,
		Section:        section.Section(row.Section),
		TaskRef:        row.TaskRef,
		IdempotencyKey: row.IdempotencyKey,
		Band:           row.Band,
		Criteria:       row.Criteria,
		Feedback:       row.Feedback,
		Model:          row.Model,
	}
}
