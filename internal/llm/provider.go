// Package llm abstracts the AI providers used to evaluate writing and
// speaking submissions. Providers return schema-validated JSON; retry and
// event-logging decorators wrap every provider the factory hands out.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the interface the evaluation service talks to.
type Provider interface {
	// Generate sends a prompt and returns structured output. When the
	// request carries a Schema, the returned Content is JSON validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the evaluator's role and constraints.
	System string

	// Messages is the conversation. Evaluations are single-turn: one user
	// message carrying the submission.
	Messages []Message

	// Schema, when set, selects the provider's native structured-output
	// mechanism and validates the response against it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Evaluations run at 0
	// for consistency across candidates.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "writing-evaluation".
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the generated output; validated JSON when the request
	// carried a Schema.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
