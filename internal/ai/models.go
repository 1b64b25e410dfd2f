package ai

import "errors"

// ErrProvider marks transport, auth, or quota failures from an AI provider.
// Callers test for it with errors.Is.
var ErrProvider = errors.New("ai provider failure")

// TextOptions controls a single text-generation call.
type TextOptions struct {
	// UseSearchGrounding asks the provider to ground the reply in live web
	// search results when the capability is available.
	UseSearchGrounding bool
}

// TextResult is the reply from a text-generation call.
type TextResult struct {
	Text string

	// Sources are the web citations the provider attached when grounding was
	// used. Entries may lack a URI or title; consumers decide renderability.
	Sources []Source
}

// Source is a single web citation backing a grounded reply.
type Source struct {
	URI   *string `json:"uri,omitempty"`
	Title *string `json:"title,omitempty"`
}

// ImageOptions controls a single image-generation call.
type ImageOptions struct {
	// AspectRatio is "1:1", "16:9", or "9:16". Defaults to "1:1".
	AspectRatio string
}

// ImageResult carries the raw bytes of a generated image.
type ImageResult struct {
	ImageBytes []byte
	MIMEType   string
}
