package store

import (
	"context"
	"fmt"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/answerrecord"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/section"
)

type answerRepo struct {
	client *ent.Client
}

// Upsert writes an answer record, replacing any prior answer for the same
// (session, question, section) key.
func (r *answerRepo) Upsert(ctx context.Context, a Answer) error {
	err := r.client.AnswerRecord.Create().
		SetSessionID(a.SessionID).
		SetQuestionID(a.QuestionID).
		SetSection(string(a.Section)).
		SetAnswer(a.Answer).
		SetTimeSpentSecs(a.TimeSpentSecs).
		OnConflictColumns(
			answerrecord.FieldSessionID,
			answerrecord.FieldQuestionID,
			answerrecord.FieldSection,
		).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert answer: %w", err)
	}
	return nil
}

func (r *answerRepo) BySession(ctx context.Context, sessionID string, sec section.Section) ([]*Answer, error) {
	query := r.client.AnswerRecord.Query().
		Where(answerrecord.SessionID(sessionID)).
		Order(ent.Asc(answerrecord.FieldQuestionID))
	if sec != "" {
		query = query.Where(answerrecord.SectionEQ(string(sec)))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}

	out := make([]*Answer, len(rows))
	for i, row := range rows {
		out[i] = &Answer{
			SessionID:     row.SessionID,
			QuestionID:    row.QuestionID,
			Section:       section.Section(row.Section),
			Answer:        row.Answer,
			TimeSpentSecs: row.TimeSpentSecs,
			ReceivedAt:    row.ReceivedAt,
		}
	}
	return out, nil
}
