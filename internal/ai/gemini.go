package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.0-flash"

// GeminiProvider implements TextGenerator using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiProvider{client: client}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// GenerateText sends the prompt to Gemini and returns the concatenated reply
// text plus any web citations the model attached.
func (p *GeminiProvider) GenerateText(ctx context.Context, prompt string, opts TextOptions) (*TextResult, error) {
	model := p.client.GenerativeModel(geminiModel)
	model.SetTemperature(0.4)

	if opts.UseSearchGrounding {
		// The API rejects forced-JSON output when search retrieval is active,
		// so the prompt itself must demand a parseable payload in that mode.
		model.Tools = []*genai.Tool{
			{GoogleSearchRetrieval: &genai.GoogleSearchRetrieval{}},
		}
	} else {
		model.ResponseMIMEType = "application/json"
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: gemini generate content: %v", ErrProvider, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: gemini returned no candidates", ErrProvider)
	}

	candidate := resp.Candidates[0]

	var text strings.Builder
	for _, part := range candidate.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return nil, fmt.Errorf("%w: gemini returned empty text parts", ErrProvider)
	}

	return &TextResult{
		Text:    text.String(),
		Sources: citationSources(candidate),
	}, nil
}

// citationSources maps the candidate's citation metadata to web sources.
// Citations carry a URI but no display title; entries without a URI are kept
// so the consumer can decide what is renderable.
func citationSources(c *genai.Candidate) []Source {
	if c.CitationMetadata == nil {
		return nil
	}
	sources := make([]Source, 0, len(c.CitationMetadata.CitationSources))
	for _, cs := range c.CitationMetadata.CitationSources {
		if cs == nil {
			continue
		}
		sources = append(sources, Source{URI: cs.URI})
	}
	if len(sources) == 0 {
		return nil
	}
	return sources
}
