// Package llm wraps the Gemini API behind a one-method Generator interface
// so conversational replies can be stubbed out in tests.
package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Generator produces a conversational reply to a single user message. The
// system prompt carries the business context and tone instructions.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// GeminiGenerator calls the Gemini API. The client reads GEMINI_API_KEY from
// the environment.
type GeminiGenerator struct {
	model           string
	maxOutputTokens int32
}

// NewGeminiGenerator creates a generator for the given model name.
func NewGeminiGenerator(model string) *GeminiGenerator {
	return &GeminiGenerator{model: model, maxOutputTokens: 200}
}

// Generate sends one user message with the system prompt and returns the
// trimmed reply text.
func (g *GeminiGenerator) Generate(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", fmt.Errorf("Generate: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: userMessage},
			},
		},
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		MaxOutputTokens: g.maxOutputTokens,
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("Generate: generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("Generate: empty response from model")
	}
	return text, nil
}

var _ Generator = (*GeminiGenerator)(nil)
