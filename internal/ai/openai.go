package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIImageProvider implements ImageGenerator with OpenAI's image API.
// Gemini handles text; image generation lives here because the Gemini SDK in
// use exposes no image surface.
type OpenAIImageProvider struct {
	client openai.Client
}

// NewOpenAIImageProvider creates an image provider from an API key.
func NewOpenAIImageProvider(apiKey string) (*OpenAIImageProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("openai: missing api key")
	}
	return &OpenAIImageProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

// GenerateImage produces one PNG for the prompt. An empty result list from
// the API is reported as "no image" (nil, nil) rather than an error.
func (p *OpenAIImageProvider) GenerateImage(ctx context.Context, prompt string, opts ImageOptions) (*ImageResult, error) {
	res, err := p.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         prompt,
		Model:          openai.ImageModelDallE3,
		N:              openai.Int(1),
		Size:           sizeForAspect(opts.AspectRatio),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: openai image generate: %v", ErrProvider, err)
	}
	if res == nil || len(res.Data) == 0 || res.Data[0].B64JSON == "" {
		return nil, nil
	}

	raw, err := base64.StdEncoding.DecodeString(res.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("%w: openai image decode: %v", ErrProvider, err)
	}
	return &ImageResult{ImageBytes: raw, MIMEType: "image/png"}, nil
}

func sizeForAspect(aspect string) openai.ImageGenerateParamsSize {
	switch aspect {
	case "16:9":
		return openai.ImageGenerateParamsSize1792x1024
	case "9:16":
		return openai.ImageGenerateParamsSize1024x1792
	default:
		return openai.ImageGenerateParamsSize1024x1024
	}
}
