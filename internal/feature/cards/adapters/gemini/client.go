// Package gemini provides a flashcard text generator backed by the Google Gemini API.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"productifai_backend/internal/feature/cards/usecase"
)

const (
	// DefaultModel is the Gemini model used for card generation.
	DefaultModel = "gemini-2.5-flash"
)

// Generator calls the Gemini API to produce flashcard text.
type Generator struct {
	client *genai.Client
	model  string
}

// Compile-time check that Generator implements CardGenerator.
var _ usecase.CardGenerator = (*Generator)(nil)

// NewGenerator creates a new Generator authenticated with the given API key.
func NewGenerator(ctx context.Context, apiKey string) (*Generator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Generator{client: client, model: DefaultModel}, nil
}

// GenerateText sends the prompt to Gemini and returns the raw text of the
// first candidate. Each link of the candidate/content/parts chain is checked
// so an unexpected response shape surfaces as ErrNoTextProduced rather than
// a panic.
func (g *Generator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", usecase.ErrNoTextProduced
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", usecase.ErrNoTextProduced
	}
	text := content.Parts[0].Text
	if text == "" {
		return "", usecase.ErrNoTextProduced
	}
	return text, nil
}
