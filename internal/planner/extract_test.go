package planner

import (
	"errors"
	"strings"
	"testing"
)

func TestExtractJSONFencedBlock(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "fence with surrounding prose",
			raw:  "Here is your itinerary:\n```json\n{\"tripTitle\":\"A Day Out\"}\n```\nEnjoy!",
			want: `{"tripTitle":"A Day Out"}`,
		},
		{
			name: "fence only",
			raw:  "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "bare json",
			raw:  `{"tripTitle":"A Day Out","summary":"fun"}`,
			want: `{"tripTitle":"A Day Out","summary":"fun"}`,
		},
		{
			name: "bare json with whitespace",
			raw:  "  \n{\"a\":1}\n  ",
			want: `{"a":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)
			if err != nil {
				t.Fatalf("ExtractJSON: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

// The fenced form wins even when the interior is not valid JSON; validation
// is a later stage's job.
func TestExtractJSONFenceWinsOverValidity(t *testing.T) {
	got, err := ExtractJSON("```json\nnot json at all\n```")
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if got != "not json at all" {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSONFailureKeepsOriginalText(t *testing.T) {
	raw := "I could not produce an itinerary today."
	_, err := ExtractJSON(raw)
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction, got %v", err)
	}
	if !strings.Contains(err.Error(), raw) {
		t.Errorf("error should carry the original text, got %q", err.Error())
	}
}

func TestExtractJSONUnclosedFence(t *testing.T) {
	_, err := ExtractJSON("```json\n{\"a\":1}")
	if !errors.Is(err, ErrExtraction) {
		t.Fatalf("expected ErrExtraction for unclosed fence, got %v", err)
	}
}
