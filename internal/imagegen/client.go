package imagegen

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"pensees/internal/config"
)

// Result is one generated card, carried as a data URI so the caller can
// preview it without anything having been persisted.
type Result struct {
	DataURI  string `json:"dataUri"`
	MIMEType string `json:"mimeType"`
	Prompt   string `json:"prompt"`
}

type Generator interface {
	Generate(ctx context.Context, prompt, aspectRatio string) (*Result, error)
}

// GeminiClient generates quote cards through the Gemini image model.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, cfg *config.Config) (*GeminiClient, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.Gemini.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create Gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: cfg.Gemini.Model}, nil
}

func (g *GeminiClient) Generate(ctx context.Context, prompt, aspectRatio string) (*Result, error) {
	if aspectRatio == "" {
		aspectRatio = "16:9"
	}

	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseModalities: []string{"IMAGE", "TEXT"},
			ImageConfig: &genai.ImageConfig{
				AspectRatio: aspectRatio,
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil || len(part.InlineData.Data) == 0 {
				continue
			}

			mimeType := part.InlineData.MIMEType
			if mimeType == "" {
				mimeType = "image/png"
			}

			return &Result{
				DataURI:  EncodeDataURI(mimeType, part.InlineData.Data),
				MIMEType: mimeType,
				Prompt:   prompt,
			}, nil
		}
	}

	return nil, fmt.Errorf("the model returned no image")
}

// EncodeDataURI wraps raw image bytes the way the generation endpoint
// hands them to the client.
func EncodeDataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI parses a data URI back into its MIME type and raw bytes.
func DecodeDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("not a data URI")
	}

	rest := strings.TrimPrefix(uri, "data:")
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, fmt.Errorf("data URI is not base64 encoded")
	}

	mimeType := rest[:sep]
	if mimeType == "" {
		return "", nil, fmt.Errorf("data URI has no MIME type")
	}

	data, err := base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("could not decode data URI payload: %w", err)
	}

	return mimeType, data, nil
}
