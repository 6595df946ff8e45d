package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/schema"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/scoring"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/section"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	svc := NewService(s.SessionRepo(), s.AnswerRepo(), s.ContentRepo(), s.EvaluationRepo())
	return svc, s
}

func seedContent(t *testing.T, s *store.Store) {
	t.Helper()
	ctx := context.Background()
	content := s.ContentRepo()

	_, err := content.CreateListeningTest(ctx, store.ListeningTest{
		Title:  "Campus services",
		Active: true,
		Sections: []schema.ListeningSection{
			{
				Title: "Section 1",
				Questions: []schema.Question{
					{ID: "l1", Number: 1, Type: "fill_blank", CorrectAnswer: "library card"},
					{ID: "l2", Number: 2, Type: "multiple_choice", CorrectAnswer: "B"},
					{ID: "l3", Number: 3, Type: "fill_blank", CorrectAnswer: "9.30"},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("seed listening test: %v", err)
	}

	_, err = content.CreateReadingTest(ctx, store.ReadingTest{
		Title:  "Urban beekeeping",
		Active: true,
		Passages: []schema.ReadingPassage{
			{
				Title: "Passage 1",
				Questions: []schema.Question{
					{ID: "r1", Number: 1, Type: "true_false_notgiven", CorrectAnswer: "TRUE"},
					{ID: "r2", Number: 2, Type: "true_false_notgiven", CorrectAnswer: "NOT GIVEN"},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("seed reading test: %v", err)
	}
}

func startSession(t *testing.T, svc *Service) *store.Session {
	t.Helper()
	sess, err := svc.Start(context.Background(), StartRequest{
		CandidateName:  "Dilnoza",
		CandidateEmail: "dilnoza@example.com",
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return sess
}

func TestStart_AssignsActiveTests(t *testing.T) {
	svc, s := newTestService(t)
	seedContent(t, s)

	sess := startSession(t, svc)
	if sess.CurrentSection != section.Listening {
		t.Errorf("new session starts at %s, want listening", sess.CurrentSection)
	}
	if sess.ListeningTestID == 0 || sess.ReadingTestID == 0 {
		t.Errorf("test ids not assigned: listening=%d reading=%d", sess.ListeningTestID, sess.ReadingTestID)
	}
	if sess.Status != store.StatusInProgress {
		t.Errorf("status = %s", sess.Status)
	}
}

func TestStart_NoActiveContent(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Start(context.Background(), StartRequest{CandidateName: "Dilnoza"})
	if !errors.Is(err, ErrNoActiveContent) {
		t.Errorf("err = %v, want ErrNoActiveContent", err)
	}
}

func TestSubmitAnswer_WrongSection(t *testing.T) {
	svc, s := newTestService(t)
	seedContent(t, s)
	sess := startSession(t, svc)

	err := svc.SubmitAnswer(context.Background(), AnswerSubmission{
		SessionID:  sess.ID,
		QuestionID: "r1",
		Section:    section.Reading,
		Answer:     "TRUE",
	})
	var wrong *ErrWrongSection
	if !errors.As(err, &wrong) {
		t.Fatalf("err = %v, want ErrWrongSection", err)
	}
	if wrong.Current != section.Listening {
		t.Errorf("Current = %s, want listening", wrong.Current)
	}
}

func TestSubmitAnswer_ResubmitOverwrites(t *testing.T) {
	svc, s := newTestService(t)
	seedContent(t, s)
	sess := startSession(t, svc)
	ctx := context.Background()

	for _, ans := range []string{"student card", "library card"} {
		err := svc.SubmitAnswer(ctx, AnswerSubmission{
			SessionID:  sess.ID,
			QuestionID: "l1",
			Section:    section.Listening,
			Answer:     ans,
		})
		if err != nil {
			t.Fatalf("submit %q: %v", ans, err)
		}
	}

	got, err := s.AnswerRepo().BySession(ctx, sess.ID, section.Listening)
	if err != nil {
		t.Fatalf("load answers: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("answer count = %d, want 1 (resubmit should overwrite)", len(got))
	}
}

func TestSubmitAnswer_CountsAsActivity(t *testing.T) {
	svc, s := newTestService(t)
	seedContent(t, s)
	sess := startSession(t, svc)
	ctx := context.Background()

	// Make the session look long idle, as if the candidate had been
	// sitting on the listening page since well before the cutoff.
	stale := time.Now().Add(-2 * time.Hour)
	err := s.Client().TestSession.UpdateOneID(sess.ID).SetLastActivityAt(stale).Exec(ctx)
	if err != nil {
		t.Fatalf("backdate: %v", err)
	}

	if err := svc.SubmitAnswer(ctx, AnswerSubmission{
		SessionID: sess.ID, QuestionID: "l1", Section: section.Listening, Answer: "library card",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// A sweep right after the answer must not expire the session.
	n, err := svc.ExpireIdle(ctx, time.Hour)
	if err != nil {
		t.Fatalf("expire: %v", err)
	}
	if n != 0 {
		t.Errorf("sweep expired %d sessions, want 0", n)
	}
	got, err := svc.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != store.StatusInProgress {
		t.Errorf("status = %s, want in_progress", got.Status)
	}
}

func TestCompleteSection_GradesListening(t *testing.T) {
	svc, s := newTestService(t)
	seedContent(t, s)
	sess := startSession(t, svc)
	ctx := context.Background()

	// Two correct (one with different case/spacing), one wrong.
	answers := map[string]string{
		"l1": "  Library   Card ",
		"l2": "b",
		"l3": "10.00",
	}
	for q, a := range answers {
		if err := svc.SubmitAnswer(ctx, AnswerSubmission{
			SessionID: sess.ID, QuestionID: q, Section: section.Listening, Answer: a,
		}); err != nil {
			t.Fatalf("submit %s: %v", q, err)
		}
	}

	updated, err := svc.CompleteSection(ctx, sess.ID, section.Listening)
	if err != nil {
		t.Fatalf("complete listening: %v", err)
	}
	if updated.CurrentSection != section.Reading {
		t.Errorf("section after completion = %s, want reading", updated.CurrentSection)
	}
	if updated.ListeningBand == nil {
		t.Fatal("listening band not recorded")
	}
	if want := scoring.ListeningBand(2); *updated.ListeningBand != want {
		t.Errorf("listening band = %v, want %v", *updated.ListeningBand, want)
	}
}

func TestCompleteSection_StaleFrom(t *testing.T) {
	svc, s := newTestService(t)
	seedContent(t, s)
	sess := startSession(t, svc)
	ctx := context.Background()

	if _, err := svc.CompleteSection(ctx, sess.ID, section.Listening); err != nil {
		t.Fatalf("complete listening: %v", err)
	}

	// A second completion of the same section must not advance again.
	_, err := svc.CompleteSection(ctx, sess.ID, section.Listening)
	var wrong *ErrWrongSection
	if !errors.As(err, &wrong) {
		t.Fatalf("err = %v, want ErrWrongSection", err)
	}
	if wrong.Current != section.Reading {
		t.Errorf("Current = %s, want reading", wrong.Current)
	}
}

func TestCompleteSection_WritingNeedsEvaluation(t *testing.T) {
	svc, s := newTestService(t)
	seedContent(t, s)
	sess := startSession(t, svc)
	ctx := context.Background()

	mustComplete(t, svc, sess.ID, section.Listening)
	mustComplete(t, svc, sess.ID, section.Reading)

	_, err := svc.CompleteSection(ctx, sess.ID, section.Writing)
	if !errors.Is(err, ErrSectionIncomplete) {
		t.Errorf("err = %v, want ErrSectionIncomplete", err)
	}
}

func TestFullLifecycle(t *testing.T) {
	svc, s := newTestService(t)
	seedContent(t, s)
	sess := startSession(t, svc)
	ctx := context.Background()
	evals := s.EvaluationRepo()

	mustComplete(t, svc, sess.ID, section.Listening)
	mustComplete(t, svc, sess.ID, section.Reading)

	appendEval(t, evals, sess.ID, section.Writing, "task-1", 6.0)
	appendEval(t, evals, sess.ID, section.Writing, "task-2", 7.0)
	mustComplete(t, svc, sess.ID, section.Writing)

	appendEval(t, evals, sess.ID, section.Speaking, "part-2", 7.0)
	final := mustComplete(t, svc, sess.ID, section.Speaking)

	if final.Status != store.StatusCompleted {
		t.Errorf("status = %s, want completed", final.Status)
	}
	if final.CurrentSection != section.Completed {
		t.Errorf("section = %s, want completed", final.CurrentSection)
	}
	if !final.WritingCompleted || !final.SpeakingCompleted {
		t.Error("completion flags not set")
	}

	// Task 2 weighs double: (6.0 + 2*7.0) / 3 rounds to 6.5.
	if final.WritingBand == nil || *final.WritingBand != 6.5 {
		t.Errorf("writing band = %v, want 6.5", final.WritingBand)
	}
	if final.SpeakingBand == nil || *final.SpeakingBand != 7.0 {
		t.Errorf("speaking band = %v", final.SpeakingBand)
	}
	if final.OverallBand == nil {
		t.Fatal("overall band not set")
	}
	want := scoring.Overall(*final.ListeningBand, *final.ReadingBand, 6.5, 7.0)
	if *final.OverallBand != want {
		t.Errorf("overall = %v, want %v", *final.OverallBand, want)
	}

	res, err := svc.Results(ctx, sess.ID)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if len(res.Evaluations) != 3 {
		t.Errorf("evaluations = %d, want 3", len(res.Evaluations))
	}
	if res.Descriptor == "" {
		t.Error("empty descriptor")
	}

	// Nothing can be written to a finished session.
	err = svc.SubmitAnswer(ctx, AnswerSubmission{
		SessionID: sess.ID, QuestionID: "l1", Section: section.Listening, Answer: "x",
	})
	if !errors.Is(err, ErrNotActive) {
		t.Errorf("submit after completion: err = %v, want ErrNotActive", err)
	}
}

func TestRecordWritingBand_RecomputesOverall(t *testing.T) {
	svc, s := newTestService(t)
	seedContent(t, s)
	sess := startSession(t, svc)
	ctx := context.Background()
	evals := s.EvaluationRepo()

	mustComplete(t, svc, sess.ID, section.Listening)
	mustComplete(t, svc, sess.ID, section.Reading)
	appendEval(t, evals, sess.ID, section.Writing, "task-2", 6.0)
	mustComplete(t, svc, sess.ID, section.Writing)
	appendEval(t, evals, sess.ID, section.Speaking, "part-2", 7.0)
	final := mustComplete(t, svc, sess.ID, section.Speaking)

	if err := svc.RecordWritingBand(ctx, sess.ID, 8.0); err != nil {
		t.Fatalf("re-score: %v", err)
	}

	got, err := svc.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.WritingBand == nil || *got.WritingBand != 8.0 {
		t.Errorf("writing band = %v, want 8.0", got.WritingBand)
	}
	want := scoring.Overall(*final.ListeningBand, *final.ReadingBand, 8.0, *final.SpeakingBand)
	if got.OverallBand == nil || *got.OverallBand != want {
		t.Errorf("overall = %v, want %v", got.OverallBand, want)
	}

	if err := svc.RecordWritingBand(ctx, sess.ID, 6.3); err == nil {
		t.Error("off-step band accepted")
	}
}

func TestResults_InProgress(t *testing.T) {
	svc, s := newTestService(t)
	seedContent(t, s)
	sess := startSession(t, svc)

	_, err := svc.Results(context.Background(), sess.ID)
	if !errors.Is(err, ErrNotCompleted) {
		t.Errorf("err = %v, want ErrNotCompleted", err)
	}
}

func mustComplete(t *testing.T, svc *Service, id string, sec section.Section) *store.Session {
	t.Helper()
	sess, err := svc.CompleteSection(context.Background(), id, sec)
	if err != nil {
		t.Fatalf("complete %s: %v", sec, err)
	}
	return sess
}

func appendEval(t *testing.T, repo store.EvaluationRepo, sessionID string, sec section.Section, taskRef string, band float64) {
	t.Helper()
	err := repo.Append(context.Background(), store.Evaluation{
		SessionID:      sessionID,
		Section:        sec,
		TaskRef:        taskRef,
		IdempotencyKey: fmt.Sprintf("%s-%s-%s", sessionID, sec, taskRef),
		Band:           band,
		Criteria:       map[string]float64{"lexical_resource": band},
		Feedback:       "Solid response.",
		Model:          "mock",
	})
	if err != nil {
		t.Fatalf("append evaluation: %v", err)
	}
}
