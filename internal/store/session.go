package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/testsession"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/section"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, data NewSession) (*Session, error) {
	builder := r.client.TestSession.Create().
		SetCandidateName(data.CandidateName).
		SetCandidateEmail(data.CandidateEmail)
	if data.ListeningTestID != 0 {
		builder = builder.SetListeningTestID(data.ListeningTestID)
	}
	if data.ReadingTestID != 0 {
		builder = builder.SetReadingTestID(data.ReadingTestID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sessionFromEnt(row), nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	row, err := r.client.TestSession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sessionFromEnt(row), nil
}

func (r *sessionRepo) List(ctx context.Context, q SessionQuery) ([]*Session, error) {
	query := r.client.TestSession.Query().
		Order(ent.Desc(testsession.FieldStartedAt))
	if q.Status != "" {
		query = query.Where(testsession.StatusEQ(q.Status))
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	out := make([]*Session, len(rows))
	for i, row := range rows {
		out[i] = sessionFromEnt(row)
	}
	return out, nil
}

// Advance performs the conditional forward transition. The WHERE clause
// pins the expected current section and in_progress status, so two racing
// completions of the same section resolve to one winner; the loser gets
// ErrStaleSection instead of silently re-advancing.
func (r *sessionRepo) Advance(ctx context.Context, id string, adv SectionAdvance) error {
	builder := r.client.TestSession.Update().
		Where(
			testsession.ID(id),
			testsession.CurrentSectionEQ(string(adv.From)),
			testsession.StatusEQ(StatusInProgress),
		).
		SetCurrentSection(string(adv.To)).
		SetLastActivityAt(time.Now())

	if adv.MarkWriting {
		builder = builder.SetWritingCompleted(true)
	}
	if adv.MarkSpeaking {
		builder = builder.SetSpeakingCompleted(true)
	}
	if adv.To == section.Completed {
		builder = builder.
			SetStatus(StatusCompleted).
			SetCompletedAt(time.Now())
		if adv.OverallBand != nil {
			builder = builder.SetOverallBand(*adv.OverallBand)
		}
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("advance session: %w", err)
	}
	if n == 0 {
		return ErrStaleSection
	}
	return nil
}

func (r *sessionRepo) SetSectionBand(ctx context.Context, id string, sec section.Section, band float64) error {
	builder := r.client.TestSession.Update().
		Where(testsession.ID(id)).
		SetLastActivityAt(time.Now())

	switch sec {
	case section.Listening:
		builder = builder.SetListeningBand(band)
	case section.Reading:
		builder = builder.SetReadingBand(band)
	case section.Writing:
		builder = builder.SetWritingBand(band)
	case section.Speaking:
		builder = builder.SetSpeakingBand(band)
	default:
		return fmt.Errorf("no band field for section %q", sec)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("set %s band: %w", sec, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sessionRepo) SetOverallBand(ctx context.Context, id string, band float64) error {
	n, err := r.client.TestSession.Update().
		Where(testsession.ID(id)).
		SetOverallBand(band).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set overall band: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sessionRepo) Touch(ctx context.Context, id string) error {
	n, err := r.client.TestSession.Update().
		Where(testsession.ID(id)).
		SetLastActivityAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("touch session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *sessionRepo) ExpireIdle(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := r.client.TestSession.Update().
		Where(
			testsession.StatusEQ(StatusInProgress),
			testsession.LastActivityAtLT(cutoff),
		).
		SetStatus(StatusExpired).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("expire idle sessions: %w", err)
	}
	return n, nil
}

func (r *sessionRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, status := range []string{StatusInProgress, StatusCompleted, StatusExpired} {
		n, err := r.client.TestSession.Query().
			Where(testsession.StatusEQ(status)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s sessions: %w", status, err)
		}
		counts[status] = n
	}
	return counts, nil
}

func sessionFromEnt(row *ent.TestSession) *Session {
	return &Session{
		ID:                row.ID,
		CandidateName:     row.CandidateName,
		CandidateEmail:    row.CandidateEmail,
		CurrentSection:    section.Section(row.CurrentSection),
		WritingCompleted:  row.WritingCompleted,
		SpeakingCompleted: row.SpeakingCompleted,
		Status:            row.Status,
		ListeningTestID:   row.ListeningTestID,
		ReadingTestID:     row.ReadingTestID,
		ListeningBand:     row.ListeningBand,
		ReadingBand:       row.ReadingBand,
		WritingBand:       row.WritingBand,
		SpeakingBand:      row.SpeakingBand,
		OverallBand:       row.OverallBand,
		StartedAt:         row.StartedAt,
		CompletedAt:       row.CompletedAt,
		LastActivityAt:    row.LastActivityAt,
	}
}
