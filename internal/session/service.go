// Package session orchestrates a candidate's test attempt: starting a
// session, accepting answers for the current section only, completing
// sections in order, and assembling final results. All section ordering
// decisions defer to the section package; all persistence goes through
// the store repositories.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/schema"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/scoring"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/section"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/store"
)

var (
	// ErrNotActive is returned when a write is attempted against a
	// session that is completed or expired.
	ErrNotActive = errors.New("session is not in progress")

	// ErrNotCompleted is returned when results are requested for a
	// session that has not finished all four sections.
	ErrNotCompleted = errors.New("session is not completed")

	// ErrNoActiveContent is returned from Start when no active listening
	// or reading test is configured.
	ErrNoActiveContent = errors.New("no active test content configured")

	// ErrSectionIncomplete is returned when a productive section is
	// closed before any evaluation was recorded for it.
	ErrSectionIncomplete = errors.New("section has no recorded evaluation")
)

// ErrWrongSection is returned when a request targets a section other than
// the one the session is currently on. Current lets callers tell the
// client where the session actually is.
type ErrWrongSection struct {
	Requested section.Section
	Current   section.Section
}

func (e *ErrWrongSection) Error() string {
	return fmt.Sprintf("section %s not available: session is at %s", e.Requested, e.Current)
}

// StartRequest carries the candidate details for a new session.
type StartRequest struct {
	CandidateName  string
	CandidateEmail string
}

// AnswerSubmission is one answer for a question in the current section.
type AnswerSubmission struct {
	SessionID     string
	QuestionID    string
	Section       section.Section
	Answer        string
	TimeSpentSecs int
}

// AnswerItem is one answer inside a batch submission.
type AnswerItem struct {
	QuestionID    string
	Answer        string
	TimeSpentSecs int
}

// Results bundles everything shown on the results page.
type Results struct {
	Session     *store.Session
	Descriptor  string
	Evaluations []*store.Evaluation
}

// Service is the single write path for session state. HTTP handlers never
// touch the repositories directly.
type Service struct {
	sessions store.SessionRepo
	answers  store.AnswerRepo
	content  store.ContentRepo
	evals    store.EvaluationRepo
}

func NewService(sessions store.SessionRepo, answers store.AnswerRepo, content store.ContentRepo, evals store.EvaluationRepo) *Service {
	return &Service{
		sessions: sessions,
		answers:  answers,
		content:  content,
		evals:    evals,
	}
}

// Start creates a new session pinned to the currently active listening and
// reading tests, so the candidate sees the same content for the whole
// attempt even if an admin rotates content mid-test.
func (s *Service) Start(ctx context.Context, req StartRequest) (*store.Session, error) {
	if strings.TrimSpace(req.CandidateName) == "" {
		return nil, fmt.Errorf("candidate name required")
	}

	lt, err := s.content.ActiveListeningTest(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoActiveContent
		}
		return nil, fmt.Errorf("resolving listening test: %w", err)
	}
	rt, err := s.content.ActiveReadingTest(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoActiveContent
		}
		return nil, fmt.Errorf("resolving reading test: %w", err)
	}

	sess, err := s.sessions.Create(ctx, store.NewSession{
		CandidateName:   req.CandidateName,
		CandidateEmail:  req.CandidateEmail,
		ListeningTestID: lt.ID,
		ReadingTestID:   rt.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return sess, nil
}

// Get fetches a session by id.
func (s *Service) Get(ctx context.Context, id string) (*store.Session, error) {
	return s.sessions.Get(ctx, id)
}

// List returns sessions matching the query, newest first.
func (s *Service) List(ctx context.Context, q store.SessionQuery) ([]*store.Session, error) {
	return s.sessions.List(ctx, q)
}

// SubmitAnswer records one answer for the session's current section.
func (s *Service) SubmitAnswer(ctx context.Context, sub AnswerSubmission) error {
	return s.SubmitAnswers(ctx, sub.SessionID, sub.Section, []AnswerItem{{
		QuestionID:    sub.QuestionID,
		Answer:        sub.Answer,
		TimeSpentSecs: sub.TimeSpentSecs,
	}})
}

// SubmitAnswers records a batch of answers for the session's current
// section with upsert semantics per question. Answers for any other
// section are rejected with ErrWrongSection, so a stale tab or a crafted
// request cannot write into a section the candidate is not on.
func (s *Service) SubmitAnswers(ctx context.Context, sessionID string, sec section.Section, items []AnswerItem) error {
	if !section.Answerable(sec) {
		return fmt.Errorf("section %q does not accept answers", sec)
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Status != store.StatusInProgress {
		return ErrNotActive
	}
	if !section.CanEnter(sec, sess.CurrentSection) {
		return &ErrWrongSection{Requested: sec, Current: sess.CurrentSection}
	}

	now := time.Now()
	for _, item := range items {
		if item.QuestionID == "" {
			return fmt.Errorf("answer without question id")
		}
		err := s.answers.Upsert(ctx, store.Answer{
			SessionID:     sessionID,
			QuestionID:    item.QuestionID,
			Section:       sec,
			Answer:        item.Answer,
			TimeSpentSecs: item.TimeSpentSecs,
			ReceivedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("saving answer %s: %w", item.QuestionID, err)
		}
	}

	// Answering counts as activity; without this the idle sweep would
	// expire a candidate who spends the whole window inside one section.
	if err := s.sessions.Touch(ctx, sessionID); err != nil {
		return fmt.Errorf("recording activity: %w", err)
	}
	return nil
}

// CompleteSection closes the named section and advances the session to the
// next one. The transition is persisted before the caller renders
// anything, and it is conditional on the session still being at from, so
// two racing completions resolve to exactly one advancement.
//
// Listening and reading are graded here from the stored answers. Writing
// and speaking take their band from the evaluations recorded for the
// session; closing one with no evaluation returns ErrSectionIncomplete.
func (s *Service) CompleteSection(ctx context.Context, sessionID string, from section.Section) (*store.Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != store.StatusInProgress {
		return nil, ErrNotActive
	}
	if sess.CurrentSection != from {
		return nil, &ErrWrongSection{Requested: from, Current: sess.CurrentSection}
	}
	next, ok := section.Next(from)
	if !ok {
		return nil, fmt.Errorf("section %q has no successor", from)
	}

	var band float64
	switch from {
	case section.Listening, section.Reading:
		band, err = s.gradeObjective(ctx, sess, from)
	case section.Writing, section.Speaking:
		band, err = s.productiveBand(ctx, sessionID, from)
	default:
		return nil, fmt.Errorf("cannot complete section %q", from)
	}
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SetSectionBand(ctx, sessionID, from, band); err != nil {
		return nil, fmt.Errorf("recording %s band: %w", from, err)
	}

	adv := store.SectionAdvance{
		From:         from,
		To:           next,
		MarkWriting:  from == section.Writing,
		MarkSpeaking: from == section.Speaking,
	}
	if next == section.Completed {
		if overall, ok := s.overallBand(sess, from, band); ok {
			adv.OverallBand = &overall
		}
	}
	if err := s.sessions.Advance(ctx, sessionID, adv); err != nil {
		return nil, err
	}
	return s.sessions.Get(ctx, sessionID)
}

// RecordWritingBand stores the writing band for a session without
// advancing it. Used when an admin re-scores a submission; on a completed
// session the overall band is recomputed from the new value.
func (s *Service) RecordWritingBand(ctx context.Context, sessionID string, band float64) error {
	return s.recordBand(ctx, sessionID, section.Writing, band)
}

// RecordSpeakingBand stores the speaking band for a session without
// advancing it.
func (s *Service) RecordSpeakingBand(ctx context.Context, sessionID string, band float64) error {
	return s.recordBand(ctx, sessionID, section.Speaking, band)
}

func (s *Service) recordBand(ctx context.Context, sessionID string, sec section.Section, band float64) error {
	if !scoring.Valid(band) {
		return fmt.Errorf("invalid band %v", band)
	}
	if err := s.sessions.SetSectionBand(ctx, sessionID, sec, band); err != nil {
		return err
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.Status != store.StatusCompleted {
		return nil
	}
	if overall, ok := s.overallBand(sess, sec, band); ok {
		return s.sessions.SetOverallBand(ctx, sessionID, overall)
	}
	return nil
}

// Results returns the final report for a completed session, including all
// evaluator feedback. Sessions still in progress get ErrNotCompleted.
func (s *Service) Results(ctx context.Context, sessionID string) (*Results, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Status != store.StatusCompleted {
		return nil, ErrNotCompleted
	}
	evals, err := s.evals.BySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading evaluations: %w", err)
	}

	res := &Results{Session: sess, Evaluations: evals}
	if sess.OverallBand != nil {
		res.Descriptor = scoring.Descriptor(*sess.OverallBand)
	}
	return res, nil
}

// ExpireIdle marks in_progress sessions idle longer than maxIdle as
// expired. Returns the number of sessions expired.
func (s *Service) ExpireIdle(ctx context.Context, maxIdle time.Duration) (int, error) {
	return s.sessions.ExpireIdle(ctx, time.Now().Add(-maxIdle))
}

// gradeObjective scores a listening or reading section by comparing the
// stored answers against the answer key of the test assigned to the
// session.
func (s *Service) gradeObjective(ctx context.Context, sess *store.Session, sec section.Section) (float64, error) {
	var (
		key map[string]string
		err error
	)
	switch sec {
	case section.Listening:
		key, err = s.listeningKey(ctx, sess.ListeningTestID)
	case section.Reading:
		key, err = s.readingKey(ctx, sess.ReadingTestID)
	}
	if err != nil {
		return 0, err
	}

	answers, err := s.answers.BySession(ctx, sess.ID, sec)
	if err != nil {
		return 0, fmt.Errorf("loading answers: %w", err)
	}

	correct := 0
	for _, a := range answers {
		want, ok := key[a.QuestionID]
		if ok && answersMatch(a.Answer, want) {
			correct++
		}
	}
	if sec == section.Listening {
		return scoring.ListeningBand(correct), nil
	}
	return scoring.ReadingBand(correct), nil
}

func (s *Service) listeningKey(ctx context.Context, testID int) (map[string]string, error) {
	t, err := s.content.GetListeningTest(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("loading listening test %d: %w", testID, err)
	}
	key := make(map[string]string)
	for _, part := range t.Sections {
		addQuestions(key, part.Questions)
	}
	return key, nil
}

func (s *Service) readingKey(ctx context.Context, testID int) (map[string]string, error) {
	t, err := s.content.GetReadingTest(ctx, testID)
	if err != nil {
		return nil, fmt.Errorf("loading reading test %d: %w", testID, err)
	}
	key := make(map[string]string)
	for _, p := range t.Passages {
		addQuestions(key, p.Questions)
	}
	return key, nil
}

func addQuestions(key map[string]string, qs []schema.Question) {
	for _, q := range qs {
		key[q.ID] = q.CorrectAnswer
	}
}

// answersMatch compares a candidate answer with the key, ignoring case
// and surrounding/internal whitespace runs.
func answersMatch(got, want string) bool {
	return normalizeAnswer(got) != "" && normalizeAnswer(got) == normalizeAnswer(want)
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// productiveBand derives the writing or speaking band from the stored
// evaluations. Only the latest evaluation per task counts, so a candidate
// who resubmits an improved essay is scored on the final version. Writing
// task 2 carries double weight.
func (s *Service) productiveBand(ctx context.Context, sessionID string, sec section.Section) (float64, error) {
	all, err := s.evals.BySession(ctx, sessionID)
	if err != nil {
		return 0, fmt.Errorf("loading evaluations: %w", err)
	}

	latest := make(map[string]*store.Evaluation)
	for _, e := range all {
		if e.Section != sec {
			continue
		}
		prev, ok := latest[e.TaskRef]
		if !ok || e.Sequence > prev.Sequence {
			latest[e.TaskRef] = e
		}
	}
	if len(latest) == 0 {
		return 0, ErrSectionIncomplete
	}

	var sum, weight float64
	for ref, e := range latest {
		w := 1.0
		if sec == section.Writing && strings.HasSuffix(ref, "2") {
			w = 2.0
		}
		sum += e.Band * w
		weight += w
	}
	return scoring.RoundHalf(sum / weight), nil
}

// overallBand computes the overall band once the final section's band is
// known. justScored is the section whose band was computed in this call
// and is not yet visible on sess.
func (s *Service) overallBand(sess *store.Session, justScored section.Section, band float64) (float64, bool) {
	bands := map[section.Section]*float64{
		section.Listening: sess.ListeningBand,
		section.Reading:   sess.ReadingBand,
		section.Writing:   sess.WritingBand,
		section.Speaking:  sess.SpeakingBand,
	}
	bands[justScored] = &band

	for _, b := range bands {
		if b == nil {
			return 0, false
		}
	}
	return scoring.Overall(
		*bands[section.Listening],
		*bands[section.Reading],
		*bands[section.Writing],
		*bands[section.Speaking],
	), true
}
