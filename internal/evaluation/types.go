// Package evaluation scores writing and speaking submissions with an LLM
// evaluator. Results are persisted as evaluation events keyed by an
// idempotency key, so re-submitting the same content returns the stored
// result instead of paying for a second evaluation.
package evaluation

import "errors"

var (
	// ErrUnavailable is returned when no LLM provider is configured.
	ErrUnavailable = errors.New("AI evaluation is not available")

	// ErrInFlight is returned when an evaluation with the same
	// idempotency key is already running.
	ErrInFlight = errors.New("evaluation already in progress")
)

// WritingRequest is one writing task submission to evaluate.
type WritingRequest struct {
	SessionID      string
	TaskRef        string // writing task identifier
	TaskNumber     int    // 1 or 2
	Prompt         string // the task the candidate responded to
	Essay          string
	MinWords       int // 0 means the standard minimum for the task
	IdempotencyKey string
}

// SpeakingRequest is one speaking part submission to evaluate.
type SpeakingRequest struct {
	SessionID      string
	PartRef        string // speaking part identifier
	PartNumber     int    // 1, 2, or 3
	Topic          string
	Questions      []string
	Transcript     string
	IdempotencyKey string
}

// Result is a completed evaluation.
type Result struct {
	Band     float64            `json:"band"`
	Criteria map[string]float64 `json:"criteria"`
	Feedback string             `json:"feedback"`
	Model    string             `json:"model"`

	// Replayed is true when the result came from a previously stored
	// evaluation with the same idempotency key.
	Replayed bool `json:"replayed,omitempty"`
}
