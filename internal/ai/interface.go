package ai

import (
	"context"
)

// TextGenerator is the text-completion capability used by the planner.
// Implementations may support live web-search grounding; when they do,
// grounding citations come back as Sources on the result.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string, opts TextOptions) (*TextResult, error)
}

// ImageGenerator produces a single illustrative image for a prompt.
// A nil result with a nil error means the provider produced no image,
// which callers must treat as a valid "no image" outcome.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string, opts ImageOptions) (*ImageResult, error)
}
