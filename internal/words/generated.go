package words

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Generator is a text-generation capability that answers in JSON.
type Generator interface {
	GenerateJSON(ctx context.Context, system, prompt string) (string, error)
}

const (
	generatedSystem = "You are a word game assistant. Generate a %d-letter English word and a short, clever hint for it. " +
		"The hint must be helpful without giving the word away. " +
		`Respond with a JSON object with the keys "word" and "hint". The word must be in capital letters.`
	generatedPrompt = "Generate a word and hint"
)

// Generated asks a Generator for one word/hint pair per fetch.
type Generated struct {
	gen    Generator
	length int
}

// NewGenerated builds a generated source for words of the given length.
func NewGenerated(gen Generator, length int) *Generated {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generated{gen: gen, length: length}
}

// FetchWord issues a single request and validates the response shape and
// word length. Every failure is wrapped with ErrWordSource.
func (g *Generated) FetchWord(ctx context.Context) (Entry, error) {
	raw, err := g.gen.GenerateJSON(ctx, fmt.Sprintf(generatedSystem, g.length), generatedPrompt)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %w", ErrWordSource, err)
	}

	var e Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &e); err != nil {
		return Entry{}, fmt.Errorf("%w: decode response: %w", ErrWordSource, err)
	}

	e, err = Validate(e, g.length)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %w", ErrWordSource, err)
	}
	return e, nil
}
