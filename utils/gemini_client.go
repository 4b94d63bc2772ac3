package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/raushankrgupta/ayush-ai/wellness"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is used when no model name is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiClient generates text with a Gemini model. It satisfies
// wellness.Generator.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient returns an error wrapping wellness.ErrMissingCredential
// when apiKey is empty.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set: %w", wellness.ErrMissingCredential)
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// Generate makes a single GenerateContent call and concatenates the text
// parts of the first candidate.
func (g *GeminiClient) Generate(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	model := g.client.GenerativeModel(g.model)
	if systemInstruction != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("unexpected response format (no text parts)")
	}
	return b.String(), nil
}
