package llm

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// =============================================================================
// GEMINI JSON GENERATOR
// =============================================================================

// Config selects the model used for generation.
type Config struct {
	APIKey      string
	Model       string
	Temperature float32
}

// Gemini asks a Gemini model for a JSON document.
type Gemini struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGemini creates a new Gemini generator.
func NewGemini(ctx context.Context, cfg Config) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &Gemini{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}, nil
}

// GenerateJSON sends one system + user turn with JSON response mode and
// returns the raw text of the first candidate.
func (g *Gemini) GenerateJSON(ctx context.Context, system, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
			Temperature:       genai.Ptr(g.temperature),
			ResponseMIMEType:  "application/json",
		},
	)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("no response from model")
	}
	return text, nil
}

// Name returns the generator name.
func (g *Gemini) Name() string {
	return fmt.Sprintf("genai:%s", g.model)
}
