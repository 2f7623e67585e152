package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func quizSchema() *Schema {
	return &Schema{
		Name:        "quiz-question",
		Description: "A multiple-choice science question",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"answer":   map[string]any{"type": "integer", "minimum": 0},
				"subject":  map[string]any{"type": "string", "enum": []any{"physics", "chemistry", "biology"}},
			},
			"required": []any{"question", "answer"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"question":"Which gas do plants absorb?","answer":2,"subject":"biology"}`)
	if err := validateResponse(quizSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"question":"What is the boiling point of water?","answer":0}`)
	if err := validateResponse(quizSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		raw  json.RawMessage
	}{
		{"missing required field", json.RawMessage(`{"question":"Which planet has rings?"}`)},
		{"wrong type", json.RawMessage(`{"question":"Which planet has rings?","answer":"two"}`)},
		{"invalid enum value", json.RawMessage(`{"question":"Which planet has rings?","answer":1,"subject":"astrology"}`)},
		{"malformed JSON", json.RawMessage(`{not json}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(quizSchema(), tt.raw)
			if err == nil {
				t.Fatal("expected error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
		})
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	if err := validateResponse(quizSchema(), raw); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "session-recap",
		Description: "Recorded quiz results",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"body": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{"type": "string"},
					},
					"required": []any{"id"},
				},
				"scores": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"body", "scores"},
		},
	}

	valid := json.RawMessage(`{"body":{"id":"mars"},"scores":[90,85,92]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"body":{"id":"mars"},"scores":["not","ints"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
