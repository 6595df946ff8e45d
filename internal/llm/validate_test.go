package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func bandSchema() *Schema {
	return &Schema{
		Name:        "test-band",
		Description: "band score with feedback",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"band": map[string]any{
					"type":    "number",
					"minimum": 0.0,
					"maximum": 9.0,
				},
				"feedback": map[string]any{
					"type": "string",
				},
			},
			"required":             []any{"band", "feedback"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"band": 6.5, "feedback": "clear position throughout"}`)
	if err := validateResponse(bandSchema(), raw); err != nil {
		t.Errorf("valid content rejected: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"band": 6.5}`)
	err := validateResponse(bandSchema(), raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"band": 11, "feedback": "x"}`)
	if err := validateResponse(bandSchema(), raw); err == nil {
		t.Error("band above maximum accepted")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"band":`)
	if err := validateResponse(bandSchema(), raw); err == nil {
		t.Error("malformed JSON accepted")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation: %v", err)
	}
}
