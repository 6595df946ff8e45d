package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/llm"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/scoring"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/store"
)

// memEvalRepo implements store.EvaluationRepo in memory for testing.
type memEvalRepo struct {
	mu    sync.Mutex
	byKey map[string]*store.Evaluation
}

func newMemEvalRepo() *memEvalRepo {
	return &memEvalRepo{byKey: make(map[string]*store.Evaluation)}
}

func (m *memEvalRepo) Append(_ context.Context, e store.Evaluation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byKey[e.IdempotencyKey]; exists {
		return store.ErrDuplicateKey
	}
	m.byKey[e.IdempotencyKey] = &e
	return nil
}

func (m *memEvalRepo) ByKey(_ context.Context, key string) (*store.Evaluation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.byKey[key]; ok {
		return e, nil
	}
	return nil, store.ErrNotFound
}

func (m *memEvalRepo) BySession(_ context.Context, sessionID string) ([]*store.Evaluation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*store.Evaluation
	for _, e := range m.byKey {
		if e.SessionID == sessionID {
			out = append(out, e)
		}
	}
	return out, nil
}

func writingResponse(band float64) llm.MockResponse {
	content, _ := json.Marshal(map[string]any{
		"task_achievement":       band,
		"coherence_and_cohesion": band,
		"lexical_resource":       band,
		"grammatical_range":      band,
		"overall_band":           band,
		"feedback":               "Well organized response with a clear position.",
	})
	return llm.MockResponse{Content: content}
}

func longEssay(words int) string {
	return strings.TrimSpace(strings.Repeat("coherent ", words))
}

func writingReq(key string) WritingRequest {
	return WritingRequest{
		SessionID:      "sess-1",
		TaskRef:        "task-2",
		TaskNumber:     2,
		Prompt:         "Some people think cities should ban cars.",
		Essay:          longEssay(260),
		IdempotencyKey: key,
	}
}

func TestEvaluateWriting_Success(t *testing.T) {
	provider := llm.NewMockProvider(writingResponse(6.5))
	repo := newMemEvalRepo()
	svc := NewService(provider, repo, DefaultConfig())

	res, err := svc.EvaluateWriting(context.Background(), writingReq("k1"))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.Band != 6.5 {
		t.Errorf("band = %v, want 6.5", res.Band)
	}
	if res.Criteria["task_achievement"] != 6.5 {
		t.Errorf("criteria = %v", res.Criteria)
	}
	if res.Feedback == "" {
		t.Error("empty feedback")
	}
	if res.Replayed {
		t.Error("fresh evaluation marked replayed")
	}

	// Persisted.
	stored, err := repo.ByKey(context.Background(), "k1")
	if err != nil {
		t.Fatalf("stored lookup: %v", err)
	}
	if stored.Band != 6.5 {
		t.Errorf("stored band = %v", stored.Band)
	}
}

func TestEvaluateWriting_ShortEssayBlockedLocally(t *testing.T) {
	provider := llm.NewMockProvider(writingResponse(6.0))
	svc := NewService(provider, newMemEvalRepo(), DefaultConfig())

	req := writingReq("k2")
	req.TaskNumber = 1
	req.Essay = longEssay(140)

	_, err := svc.EvaluateWriting(context.Background(), req)
	var short *scoring.ErrTooShort
	if !errors.As(err, &short) {
		t.Fatalf("err = %v, want ErrTooShort", err)
	}
	if err.Error() != "10 more words needed" {
		t.Errorf("message = %q", err.Error())
	}
	// The provider must not have been called.
	if len(provider.Calls) != 0 {
		t.Errorf("provider called %d times for a blocked submission", len(provider.Calls))
	}
}

func TestEvaluateWriting_DuplicateKeyReplays(t *testing.T) {
	// Only one canned response: the second call must not reach the provider.
	provider := llm.NewMockProvider(writingResponse(7.0))
	svc := NewService(provider, newMemEvalRepo(), DefaultConfig())
	ctx := context.Background()

	first, err := svc.EvaluateWriting(ctx, writingReq("k3"))
	if err != nil {
		t.Fatalf("first evaluate: %v", err)
	}

	second, err := svc.EvaluateWriting(ctx, writingReq("k3"))
	if err != nil {
		t.Fatalf("second evaluate: %v", err)
	}
	if !second.Replayed {
		t.Error("duplicate submission not marked replayed")
	}
	if second.Band != first.Band {
		t.Errorf("replayed band = %v, want %v", second.Band, first.Band)
	}
	if len(provider.Calls) != 1 {
		t.Errorf("provider called %d times, want 1", len(provider.Calls))
	}
}

func TestEvaluateWriting_RoundsBand(t *testing.T) {
	provider := llm.NewMockProvider(writingResponse(6.25))
	svc := NewService(provider, newMemEvalRepo(), DefaultConfig())

	res, err := svc.EvaluateWriting(context.Background(), writingReq("k4"))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.Band != 6.5 {
		t.Errorf("band = %v, want 6.5 (rounded)", res.Band)
	}
}

func TestEvaluateWriting_BandFromCriteriaWhenOverallZero(t *testing.T) {
	content, _ := json.Marshal(map[string]any{
		"task_achievement":       6.0,
		"coherence_and_cohesion": 6.0,
		"lexical_resource":       7.0,
		"grammatical_range":      7.0,
		"overall_band":           0.0,
		"feedback":               "Good range of structures.",
	})
	provider := llm.NewMockProvider(llm.MockResponse{Content: content})
	svc := NewService(provider, newMemEvalRepo(), DefaultConfig())

	res, err := svc.EvaluateWriting(context.Background(), writingReq("k7"))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.Band != 6.5 {
		t.Errorf("band = %v, want 6.5 derived from the criteria", res.Band)
	}
}

func TestEvaluateSpeaking_Success(t *testing.T) {
	content, _ := json.Marshal(map[string]any{
		"fluency_and_coherence": 7.0,
		"lexical_resource":      6.5,
		"grammatical_range":     6.5,
		"pronunciation":         7.0,
		"overall_band":          7.0,
		"feedback":              "Natural pacing with occasional hesitation.",
	})
	provider := llm.NewMockProvider(llm.MockResponse{Content: content})
	svc := NewService(provider, newMemEvalRepo(), DefaultConfig())

	res, err := svc.EvaluateSpeaking(context.Background(), SpeakingRequest{
		SessionID:      "sess-1",
		PartRef:        "part-2",
		PartNumber:     2,
		Topic:          "Describe a place you enjoy visiting",
		Transcript:     "I would like to talk about the old town near my home...",
		IdempotencyKey: "k5",
	})
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if res.Band != 7.0 {
		t.Errorf("band = %v, want 7.0", res.Band)
	}
	if len(res.Criteria) != 4 {
		t.Errorf("criteria count = %d, want 4", len(res.Criteria))
	}
}

func TestEvaluateSpeaking_EmptyTranscript(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), newMemEvalRepo(), DefaultConfig())
	_, err := svc.EvaluateSpeaking(context.Background(), SpeakingRequest{
		SessionID:  "sess-1",
		Transcript: "   ",
	})
	if err == nil {
		t.Error("empty transcript accepted")
	}
}

func TestEvaluate_NoProvider(t *testing.T) {
	svc := NewService(nil, newMemEvalRepo(), DefaultConfig())
	_, err := svc.EvaluateWriting(context.Background(), writingReq("k6"))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}
