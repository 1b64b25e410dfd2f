package planner

import (
	"encoding/json"
	"fmt"
	"strings"
)

const jsonFence = "```json"

// ExtractJSON isolates a single JSON payload from a raw model reply. The
// provider inconsistently wraps output in markdown code fences depending on
// prompt phrasing and model version, so both forms must be tolerated: a
// fenced ```json block wins, otherwise the trimmed text itself must parse.
func ExtractJSON(raw string) (string, error) {
	text := strings.TrimSpace(raw)

	if inner, ok := fencedPayload(text); ok {
		return inner, nil
	}
	if json.Valid([]byte(text)) {
		return text, nil
	}
	return "", fmt.Errorf("%w: %s", ErrExtraction, text)
}

// fencedPayload returns the interior of the first ```json fence, if any.
func fencedPayload(text string) (string, bool) {
	start := strings.Index(text, jsonFence)
	if start < 0 {
		return "", false
	}
	rest := text[start+len(jsonFence):]
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}
