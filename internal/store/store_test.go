package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/section"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess, err := repo.Create(ctx, NewSession{CandidateName: "Aziza"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if sess.CurrentSection != section.Listening {
		t.Errorf("new session starts at %s, want listening", sess.CurrentSection)
	}
	if sess.Status != StatusInProgress {
		t.Errorf("new session status = %s", sess.Status)
	}

	err = repo.Advance(ctx, sess.ID, SectionAdvance{From: section.Listening, To: section.Reading})
	if err != nil {
		t.Fatalf("advance: %v", err)
	}

	got, err := repo.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CurrentSection != section.Reading {
		t.Errorf("section = %s, want reading", got.CurrentSection)
	}
}

func TestAdvance_StaleFrom(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess, err := repo.Create(ctx, NewSession{CandidateName: "Bekzod"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Session is at listening; a transition claiming to come from reading
	// must not apply.
	err = repo.Advance(ctx, sess.ID, SectionAdvance{From: section.Reading, To: section.Writing})
	if !errors.Is(err, ErrStaleSection) {
		t.Fatalf("err = %v, want ErrStaleSection", err)
	}

	got, _ := repo.Get(ctx, sess.ID)
	if got.CurrentSection != section.Listening {
		t.Errorf("section moved to %s on stale advance", got.CurrentSection)
	}
}

func TestAdvance_CompletionSetsStatus(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess, _ := repo.Create(ctx, NewSession{CandidateName: "Carima"})
	steps := []SectionAdvance{
		{From: section.Listening, To: section.Reading},
		{From: section.Reading, To: section.Writing},
		{From: section.Writing, To: section.Speaking, MarkWriting: true},
		{From: section.Speaking, To: section.Completed, MarkSpeaking: true},
	}
	for _, adv := range steps {
		if err := repo.Advance(ctx, sess.ID, adv); err != nil {
			t.Fatalf("advance %s->%s: %v", adv.From, adv.To, err)
		}
	}

	got, _ := repo.Get(ctx, sess.ID)
	if got.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", got.Status)
	}
	if !got.WritingCompleted || !got.SpeakingCompleted {
		t.Error("completion flags not set")
	}
	if got.CompletedAt == nil {
		t.Error("completed_at not set")
	}

	// A completed session accepts no further transitions.
	err := repo.Advance(ctx, sess.ID, SectionAdvance{From: section.Completed, To: section.Listening})
	if !errors.Is(err, ErrStaleSection) {
		t.Errorf("advance on completed session: err = %v, want ErrStaleSection", err)
	}
}

func TestAnswerUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	sess, _ := s.SessionRepo().Create(ctx, NewSession{CandidateName: "Dono"})
	answers := s.AnswerRepo()

	a := Answer{
		SessionID:  sess.ID,
		QuestionID: "q1",
		Section:    section.Listening,
		Answer:     "first",
	}
	if err := answers.Upsert(ctx, a); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	// Same key again: updates in place, no duplicate row.
	a.Answer = "second"
	if err := answers.Upsert(ctx, a); err != nil {
		t.Fatalf("re-upsert: %v", err)
	}

	got, err := answers.BySession(ctx, sess.ID, section.Listening)
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d answers, want 1", len(got))
	}
	if got[0].Answer != "second" {
		t.Errorf("answer = %q, want the updated value", got[0].Answer)
	}
}

func TestEvaluationIdempotencyKey(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	evals := s.EvaluationRepo()

	e := Evaluation{
		SessionID:      "sess-1",
		Section:        section.Writing,
		TaskRef:        "task-2",
		IdempotencyKey: "key-abc",
		Band:           6.5,
		Feedback:       "solid essay",
	}
	if err := evals.Append(ctx, e); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := evals.Append(ctx, e); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("duplicate append: err = %v, want ErrDuplicateKey", err)
	}

	got, err := evals.ByKey(ctx, "key-abc")
	if err != nil {
		t.Fatalf("by key: %v", err)
	}
	if got.Band != 6.5 {
		t.Errorf("band = %v", got.Band)
	}
}

func TestTouchResetsIdleClock(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	active, _ := repo.Create(ctx, NewSession{CandidateName: "Farrux"})
	idle, _ := repo.Create(ctx, NewSession{CandidateName: "Gulnoza"})

	// Both sessions went quiet well before the cutoff.
	stale := time.Now().Add(-2 * time.Hour)
	for _, id := range []string{active.ID, idle.ID} {
		err := s.Client().TestSession.UpdateOneID(id).SetLastActivityAt(stale).Exec(ctx)
		if err != nil {
			t.Fatalf("backdate: %v", err)
		}
	}

	if err := repo.Touch(ctx, active.ID); err != nil {
		t.Fatalf("touch: %v", err)
	}

	n, err := repo.ExpireIdle(ctx, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("expire: %v", err)
	}
	if n != 1 {
		t.Errorf("expired %d sessions, want 1", n)
	}

	got, _ := repo.Get(ctx, active.ID)
	if got.Status != StatusInProgress {
		t.Errorf("touched session status = %s, want in_progress", got.Status)
	}
	got, _ = repo.Get(ctx, idle.ID)
	if got.Status != StatusExpired {
		t.Errorf("idle session status = %s, want expired", got.Status)
	}
}

func TestExpireIdle(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess, _ := repo.Create(ctx, NewSession{CandidateName: "Eldor"})

	// Cutoff in the future catches the fresh session.
	n, err := repo.ExpireIdle(ctx, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("expire: %v", err)
	}
	if n != 1 {
		t.Errorf("expired %d sessions, want 1", n)
	}

	got, _ := repo.Get(ctx, sess.ID)
	if got.Status != StatusExpired {
		t.Errorf("status = %s, want expired", got.Status)
	}

	// Already expired sessions are not expired again.
	n, _ = repo.ExpireIdle(ctx, time.Now().Add(time.Hour))
	if n != 0 {
		t.Errorf("second sweep expired %d sessions, want 0", n)
	}
}
