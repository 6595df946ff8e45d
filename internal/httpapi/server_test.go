package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/ent/schema"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/audio"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/evaluation"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/llm"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/section"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/session"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/store"
)

const testAdminToken = "test-token"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testEnv struct {
	router   http.Handler
	store    *store.Store
	sessions *session.Service
	provider *llm.MockProvider
}

func newTestEnv(t *testing.T, responses ...llm.MockResponse) *testEnv {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	files, err := audio.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("audio store: %v", err)
	}

	provider := llm.NewMockProvider(responses...)
	sessions := session.NewService(s.SessionRepo(), s.AnswerRepo(), s.ContentRepo(), s.EvaluationRepo())
	evaluator := evaluation.NewService(provider, s.EvaluationRepo(), evaluation.DefaultConfig())

	srv := NewServer(Options{
		AdminToken:  testAdminToken,
		Sessions:    sessions,
		Evaluator:   evaluator,
		Content:     s.ContentRepo(),
		AudioMeta:   s.AudioRepo(),
		AudioFiles:  files,
		SessionRepo: s.SessionRepo(),
		Events:      s.EventRepo(),
	})

	return &testEnv{
		router:   srv.Router(),
		store:    s,
		sessions: sessions,
		provider: provider,
	}
}

func (e *testEnv) seedContent(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	content := e.store.ContentRepo()

	mustSeed := func(what string, err error) {
		if err != nil {
			t.Fatalf("seed %s: %v", what, err)
		}
	}

	_, err := content.CreateListeningTest(ctx, store.ListeningTest{
		Title:  "Campus services",
		Active: true,
		Sections: []schema.ListeningSection{{
			Title: "Section 1",
			Questions: []schema.Question{
				{ID: "l1", Number: 1, Type: "fill_blank", Prompt: "You need a ___", CorrectAnswer: "library card"},
			},
		}},
	})
	mustSeed("listening", err)

	_, err = content.CreateReadingTest(ctx, store.ReadingTest{
		Title:  "Urban beekeeping",
		Active: true,
		Passages: []schema.ReadingPassage{{
			Title: "Passage 1",
			Body:  "Bees thrive in cities.",
			Questions: []schema.Question{
				{ID: "r1", Number: 1, Type: "true_false_notgiven", Prompt: "Bees dislike cities.", CorrectAnswer: "FALSE"},
			},
		}},
	})
	mustSeed("reading", err)

	_, err = content.CreateWritingTask(ctx, store.WritingTask{
		TaskNumber: 1, Prompt: "Summarize the chart.", MinWords: 150, Active: true,
	})
	mustSeed("writing task 1", err)
	_, err = content.CreateWritingTask(ctx, store.WritingTask{
		TaskNumber: 2, Prompt: "Cities should ban cars. Discuss.", MinWords: 250, Active: true,
	})
	mustSeed("writing task 2", err)

	_, err = content.CreateSpeakingPart(ctx, store.SpeakingPart{
		PartNumber: 2, Topic: "Describe a place you enjoy", Questions: []string{"Where is it?"},
		PrepSeconds: 60, SpeakSeconds: 120, Active: true,
	})
	mustSeed("speaking part", err)
}

func (e *testEnv) startSession(t *testing.T) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/test/sessions", map[string]any{
		"candidate_name": "Dilnoza",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("start session: status %d: %s", w.Code, w.Body)
	}
	var resp struct {
		ID string `json:"id"`
	}
	decode(t, w, &resp)
	return resp.ID
}

// advanceTo drives the session through the service until it reaches target.
func (e *testEnv) advanceTo(t *testing.T, id string, target section.Section) {
	t.Helper()
	ctx := context.Background()
	for _, sec := range []section.Section{section.Listening, section.Reading} {
		sess, err := e.sessions.Get(ctx, id)
		if err != nil {
			t.Fatalf("get session: %v", err)
		}
		if !section.Before(sess.CurrentSection, target) {
			return
		}
		if _, err := e.sessions.CompleteSection(ctx, id, sec); err != nil {
			t.Fatalf("complete %s: %v", sec, err)
		}
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %s: %v", w.Body, err)
	}
}

func writingJSON(band float64) llm.MockResponse {
	content, _ := json.Marshal(map[string]any{
		"task_achievement":       band,
		"coherence_and_cohesion": band,
		"lexical_resource":       band,
		"grammatical_range":      band,
		"overall_band":           band,
		"feedback":               "Clear position throughout.",
	})
	return llm.MockResponse{Content: content}
}

func essay(words int) string {
	return strings.TrimSpace(strings.Repeat("word ", words))
}

func TestHealthz(t *testing.T) {
	e := newTestEnv(t)
	w := e.do(t, http.MethodGet, "/healthz", nil, "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}
}

func TestSessionFlow(t *testing.T) {
	e := newTestEnv(t)
	e.seedContent(t)
	id := e.startSession(t)

	// Progress view starts with listening current and the rest locked.
	w := e.do(t, http.MethodGet, "/api/test/sessions/"+id, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get session: %d", w.Code)
	}
	var view sessionView
	decode(t, w, &view)
	if view.CurrentSection != section.Listening {
		t.Errorf("current = %s", view.CurrentSection)
	}
	if view.Sections[0].State != "current" || view.Sections[1].State != "locked" {
		t.Errorf("states = %+v", view.Sections)
	}

	// Submitting for a locked section conflicts and reports the actual one.
	w = e.do(t, http.MethodPost, "/api/test/submit-answer", map[string]any{
		"session_id": id, "question_id": "r1", "section": "reading", "answer": "FALSE",
	}, "")
	if w.Code != http.StatusConflict {
		t.Fatalf("locked submit: status %d", w.Code)
	}
	var conflict struct {
		CurrentSection string `json:"current_section"`
	}
	decode(t, w, &conflict)
	if conflict.CurrentSection != "listening" {
		t.Errorf("current_section = %q", conflict.CurrentSection)
	}

	// The current section accepts answers.
	w = e.do(t, http.MethodPost, "/api/test/submit-answer", map[string]any{
		"session_id": id, "question_id": "l1", "section": "listening", "answer": "library card",
	}, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("submit: status %d: %s", w.Code, w.Body)
	}

	// Completing listening advances to reading.
	w = e.do(t, http.MethodPost, "/api/test/sessions/"+id+"/complete-section", map[string]any{
		"section": "listening",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("complete: status %d: %s", w.Code, w.Body)
	}
	decode(t, w, &view)
	if view.CurrentSection != section.Reading {
		t.Errorf("after completion current = %s", view.CurrentSection)
	}
	if view.ListeningBand == nil {
		t.Error("listening band missing from view")
	}

	// Completing listening again is stale, not a double advance.
	w = e.do(t, http.MethodPost, "/api/test/sessions/"+id+"/complete-section", map[string]any{
		"section": "listening",
	}, "")
	if w.Code != http.StatusConflict {
		t.Errorf("stale complete: status %d", w.Code)
	}
}

func TestSubmitAnswers_Batch(t *testing.T) {
	e := newTestEnv(t)
	e.seedContent(t)
	id := e.startSession(t)

	w := e.do(t, http.MethodPost, "/api/test/sessions/"+id+"/answers", map[string]any{
		"section": "listening",
		"answers": []map[string]any{
			{"question_id": "l1", "answer": "library card", "time_spent_seconds": 40},
			{"question_id": "l2", "answer": "B"},
		},
	}, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("batch submit: status %d: %s", w.Code, w.Body)
	}

	saved, err := e.store.AnswerRepo().BySession(context.Background(), id, section.Listening)
	if err != nil {
		t.Fatalf("load answers: %v", err)
	}
	if len(saved) != 2 {
		t.Errorf("answers = %d, want 2", len(saved))
	}

	// Batch for a locked section is rejected wholesale.
	w = e.do(t, http.MethodPost, "/api/test/sessions/"+id+"/answers", map[string]any{
		"section": "reading",
		"answers": []map[string]any{{"question_id": "r1", "answer": "TRUE"}},
	}, "")
	if w.Code != http.StatusConflict {
		t.Errorf("locked batch: status %d", w.Code)
	}
}

func TestSectionContent_GuardAndSanitization(t *testing.T) {
	e := newTestEnv(t)
	e.seedContent(t)
	id := e.startSession(t)

	// Ahead of the session: reading is unreachable.
	w := e.do(t, http.MethodGet, "/api/test/sessions/"+id+"/sections/reading", nil, "")
	if w.Code != http.StatusConflict {
		t.Errorf("ahead section: status %d", w.Code)
	}

	// The current section serves content without the answer key.
	w = e.do(t, http.MethodGet, "/api/test/sessions/"+id+"/sections/listening", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("listening content: status %d: %s", w.Code, w.Body)
	}
	body := w.Body.String()
	if strings.Contains(body, "correct_answer") || strings.Contains(body, "library card") {
		t.Error("answer key leaked to candidate")
	}
	if !strings.Contains(body, "You need a") {
		t.Error("question prompt missing")
	}

	// Behind the session after advancing.
	e.advanceTo(t, id, section.Writing)
	w = e.do(t, http.MethodGet, "/api/test/sessions/"+id+"/sections/listening", nil, "")
	if w.Code != http.StatusConflict {
		t.Errorf("behind section: status %d", w.Code)
	}

	w = e.do(t, http.MethodGet, "/api/test/sessions/"+id+"/sections/writing", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("writing content: status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Summarize the chart.") {
		t.Error("writing tasks missing")
	}
}

func TestEvaluateWriting_ShortEssayRejected(t *testing.T) {
	e := newTestEnv(t, writingJSON(6.0))
	e.seedContent(t)
	id := e.startSession(t)
	e.advanceTo(t, id, section.Writing)

	w := e.do(t, http.MethodPost, "/api/ai/evaluate/writing", map[string]any{
		"session_id": id, "task_number": 1, "essay": essay(140),
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	var resp struct {
		Error string `json:"error"`
	}
	decode(t, w, &resp)
	if resp.Error != "10 more words needed" {
		t.Errorf("error = %q", resp.Error)
	}
	if len(e.provider.Calls) != 0 {
		t.Error("provider called for a too-short essay")
	}
}

func TestEvaluateWriting_SuccessAndReplay(t *testing.T) {
	e := newTestEnv(t, writingJSON(6.5))
	e.seedContent(t)
	id := e.startSession(t)
	e.advanceTo(t, id, section.Writing)

	body := map[string]any{
		"session_id": id, "task_number": 1, "essay": essay(160),
	}

	w := e.do(t, http.MethodPost, "/api/ai/evaluate/writing", body, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body)
	}
	var res evaluationView
	decode(t, w, &res)
	if res.Band != 6.5 {
		t.Errorf("band = %v", res.Band)
	}
	if res.Replayed {
		t.Error("first evaluation marked replayed")
	}

	// Same submission again: served from the stored result.
	w = e.do(t, http.MethodPost, "/api/ai/evaluate/writing", body, "")
	if w.Code != http.StatusOK {
		t.Fatalf("replay status = %d: %s", w.Code, w.Body)
	}
	decode(t, w, &res)
	if !res.Replayed {
		t.Error("duplicate submission not replayed")
	}
	if len(e.provider.Calls) != 1 {
		t.Errorf("provider calls = %d, want 1", len(e.provider.Calls))
	}
}

func TestEvaluateWriting_WrongSection(t *testing.T) {
	e := newTestEnv(t)
	e.seedContent(t)
	id := e.startSession(t)

	w := e.do(t, http.MethodPost, "/api/ai/evaluate/writing", map[string]any{
		"session_id": id, "task_number": 1, "essay": essay(160),
	}, "")
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want conflict while on listening", w.Code)
	}
}

func TestResults_OnlyWhenCompleted(t *testing.T) {
	e := newTestEnv(t)
	e.seedContent(t)
	id := e.startSession(t)

	w := e.do(t, http.MethodGet, "/api/test/sessions/"+id+"/results", nil, "")
	if w.Code != http.StatusConflict {
		t.Errorf("in-progress results: status %d", w.Code)
	}
}

func TestAdminAuth(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodGet, "/api/admin/stats", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: status %d", w.Code)
	}

	w = e.do(t, http.MethodGet, "/api/admin/stats", nil, "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad token: status %d", w.Code)
	}

	w = e.do(t, http.MethodGet, "/api/admin/stats", nil, testAdminToken)
	if w.Code != http.StatusOK {
		t.Errorf("good token: status %d: %s", w.Code, w.Body)
	}
}

func TestAdminRescoreBand(t *testing.T) {
	e := newTestEnv(t)
	e.seedContent(t)
	id := e.startSession(t)
	e.advanceTo(t, id, section.Writing)

	body := map[string]any{"section": "writing", "band": 7.5}

	w := e.do(t, http.MethodPatch, "/api/admin/sessions/"+id+"/bands", body, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated re-score: status %d", w.Code)
	}

	w = e.do(t, http.MethodPatch, "/api/admin/sessions/"+id+"/bands", body, testAdminToken)
	if w.Code != http.StatusNoContent {
		t.Fatalf("re-score: status %d: %s", w.Code, w.Body)
	}

	sess, err := e.sessions.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if sess.WritingBand == nil || *sess.WritingBand != 7.5 {
		t.Errorf("writing band = %v, want 7.5", sess.WritingBand)
	}

	// Objective sections are graded from the answer key, not overridable.
	w = e.do(t, http.MethodPatch, "/api/admin/sessions/"+id+"/bands", map[string]any{
		"section": "listening", "band": 7.0,
	}, testAdminToken)
	if w.Code != http.StatusBadRequest {
		t.Errorf("listening re-score: status %d", w.Code)
	}

	// Off-step bands are rejected.
	w = e.do(t, http.MethodPatch, "/api/admin/sessions/"+id+"/bands", map[string]any{
		"section": "writing", "band": 6.3,
	}, testAdminToken)
	if w.Code != http.StatusBadRequest {
		t.Errorf("off-step band: status %d", w.Code)
	}
}

func TestAdminContentLifecycle(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(t, http.MethodPost, "/api/admin/writing-tasks", map[string]any{
		"task_number": 2, "prompt": "Discuss remote work.", "min_words": 250,
	}, testAdminToken)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status %d: %s", w.Code, w.Body)
	}
	var created store.WritingTask
	decode(t, w, &created)
	if created.ID == 0 {
		t.Fatal("created task has no id")
	}
	if created.Active {
		t.Error("new task active by default")
	}

	path := fmt.Sprintf("/api/admin/content/writing/%d/active", created.ID)
	w = e.do(t, http.MethodPatch, path, map[string]any{"active": true}, testAdminToken)
	if w.Code != http.StatusNoContent {
		t.Fatalf("activate: status %d: %s", w.Code, w.Body)
	}

	w = e.do(t, http.MethodGet, "/api/admin/writing-tasks", nil, testAdminToken)
	var list struct {
		Tasks []store.WritingTask `json:"tasks"`
	}
	decode(t, w, &list)
	if len(list.Tasks) != 1 || !list.Tasks[0].Active {
		t.Errorf("tasks = %+v", list.Tasks)
	}
}

func TestAdminAudioUploadAndStream(t *testing.T) {
	e := newTestEnv(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="test1.mp3"`)
	hdr.Set("Content-Type", "audio/mpeg")
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	payload := []byte("fake mp3 bytes")
	part.Write(payload)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/admin/audio", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+testAdminToken)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("upload: status %d: %s", w.Code, w.Body)
	}

	var asset store.AudioAsset
	decode(t, w, &asset)
	if asset.ID == 0 {
		t.Fatal("asset has no id")
	}

	// Candidates stream it back unauthenticated.
	sw := e.do(t, http.MethodGet, fmt.Sprintf("/api/audio/%d", asset.ID), nil, "")
	if sw.Code != http.StatusOK {
		t.Fatalf("stream: status %d", sw.Code)
	}
	if !bytes.Equal(sw.Body.Bytes(), payload) {
		t.Error("streamed bytes differ from upload")
	}
	if ct := sw.Header().Get("Content-Type"); ct != "audio/mpeg" {
		t.Errorf("content type = %q", ct)
	}
}

func TestAdminExport(t *testing.T) {
	e := newTestEnv(t)
	e.seedContent(t)
	e.startSession(t)

	w := e.do(t, http.MethodGet, "/api/admin/export", nil, testAdminToken)
	if w.Code != http.StatusOK {
		t.Fatalf("export: status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content type = %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Error("empty export body")
	}
}
