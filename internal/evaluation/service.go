package evaluation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/llm"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/scoring"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/section"
	"github.com/abdumajidovOzodbek/IELTSPrep-sub001/internal/store"
)

// Config tunes evaluation requests.
type Config struct {
	// MaxTokens caps the evaluator's response.
	MaxTokens int

	// Timeout bounds a single evaluation including provider retries.
	Timeout time.Duration
}

// DefaultConfig returns evaluation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens: 1024,
		Timeout:   90 * time.Second,
	}
}

// Service evaluates writing and speaking submissions. A nil provider
// means AI evaluation is unavailable; every call returns ErrUnavailable.
type Service struct {
	provider llm.Provider
	evals    store.EvaluationRepo
	cfg      Config

	mu       sync.Mutex
	inflight map[string]bool // keyed by idempotency key
}

// NewService creates an evaluation service.
func NewService(provider llm.Provider, evals store.EvaluationRepo, cfg Config) *Service {
	return &Service{
		provider: provider,
		evals:    evals,
		cfg:      cfg,
		inflight: make(map[string]bool),
	}
}

// EvaluateWriting scores one writing submission. The word count is checked
// before any provider call; duplicate submissions replay the stored result.
func (s *Service) EvaluateWriting(ctx context.Context, req WritingRequest) (*Result, error) {
	if req.MinWords > 0 {
		// The task content carries its own minimum.
		if words := scoring.WordCount(req.Essay); words < req.MinWords {
			return nil, &scoring.ErrTooShort{TaskNumber: req.TaskNumber, Words: words, Min: req.MinWords}
		}
	} else if err := scoring.CheckWordCount(req.TaskNumber, req.Essay); err != nil {
		return nil, err
	}

	return s.evaluate(ctx, evalCall{
		sessionID:      req.SessionID,
		sec:            section.Writing,
		taskRef:        req.TaskRef,
		idempotencyKey: req.IdempotencyKey,
		purpose:        llm.PurposeWritingEval,
		system:         writingSystem,
		prompt:         buildWritingPrompt(req),
		schema:         WritingSchema,
	})
}

// EvaluateSpeaking scores one speaking transcript.
func (s *Service) EvaluateSpeaking(ctx context.Context, req SpeakingRequest) (*Result, error) {
	if strings.TrimSpace(req.Transcript) == "" {
		return nil, fmt.Errorf("empty transcript")
	}

	return s.evaluate(ctx, evalCall{
		sessionID:      req.SessionID,
		sec:            section.Speaking,
		taskRef:        req.PartRef,
		idempotencyKey: req.IdempotencyKey,
		purpose:        llm.PurposeSpeakingEval,
		system:         speakingSystem,
		prompt:         buildSpeakingPrompt(req),
		schema:         SpeakingSchema,
	})
}

type evalCall struct {
	sessionID      string
	sec            section.Section
	taskRef        string
	idempotencyKey string
	purpose        string
	system         string
	prompt         string
	schema         *llm.Schema
}

// evaluatorOutput mirrors the evaluation schemas: criterion fields vary,
// overall_band and feedback are common.
type evaluatorOutput struct {
	OverallBand float64 `json:"overall_band"`
	Feedback    string  `json:"feedback"`
}

func (s *Service) evaluate(ctx context.Context, call evalCall) (*Result, error) {
	if s.provider == nil {
		return nil, ErrUnavailable
	}

	// Replay a stored result for the same submission.
	if stored, err := s.evals.ByKey(ctx, call.idempotencyKey); err == nil {
		return &Result{
			Band:     stored.Band,
			Criteria: stored.Criteria,
			Feedback: stored.Feedback,
			Model:    stored.Model,
			Replayed: true,
		}, nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	if !s.claim(call.idempotencyKey) {
		return nil, ErrInFlight
	}
	defer s.release(call.idempotencyKey)

	ctx = llm.WithPurpose(ctx, call.purpose)
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:    call.system,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: call.prompt}},
		Schema:    call.schema,
		MaxTokens: s.cfg.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", call.sec, err)
	}

	var out evaluatorOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse evaluation: %w", err)
	}
	criteria, err := extractCriteria(resp.Content)
	if err != nil {
		return nil, err
	}

	band := scoring.RoundHalf(out.OverallBand)
	if out.OverallBand == 0 {
		// Some models zero the overall while still scoring the criteria;
		// derive it from them instead.
		band = scoring.CriteriaBand(criteria)
	}

	result := &Result{
		Band:     band,
		Criteria: criteria,
		Feedback: out.Feedback,
		Model:    resp.Model,
	}

	err = s.evals.Append(ctx, store.Evaluation{
		SessionID:      call.sessionID,
		Section:        call.sec,
		TaskRef:        call.taskRef,
		IdempotencyKey: call.idempotencyKey,
		Band:           result.Band,
		Criteria:       result.Criteria,
		Feedback:       result.Feedback,
		Model:          result.Model,
	})
	if errors.Is(err, store.ErrDuplicateKey) {
		// Lost a race with an identical submission; the stored result wins.
		stored, lookupErr := s.evals.ByKey(ctx, call.idempotencyKey)
		if lookupErr != nil {
			return nil, lookupErr
		}
		return &Result{
			Band:     stored.Band,
			Criteria: stored.Criteria,
			Feedback: stored.Feedback,
			Model:    stored.Model,
			Replayed: true,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}

// extractCriteria pulls the numeric criterion fields out of the response,
// excluding overall_band.
func extractCriteria(raw json.RawMessage) (map[string]float64, error) {
	var all map[string]any
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("parse criteria: %w", err)
	}

	criteria := make(map[string]float64)
	for k, v := range all {
		if k == "overall_band" {
			continue
		}
		if f, ok := v.(float64); ok {
			criteria[k] = f
		}
	}
	return criteria, nil
}

func (s *Service) claim(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[key] {
		return false
	}
	s.inflight[key] = true
	return true
}

func (s *Service) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)
}
