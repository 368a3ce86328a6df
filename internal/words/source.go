package words

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordhint/internal/llm"
)

// Strategy names accepted by New.
const (
	KindStatic    = "static"
	KindGenerated = "generated"
	KindRemote    = "remote"
)

// Options configures New.
type Options struct {
	Kind      string
	Length    int
	WordsFile string        // static: optional list file
	RemoteURL string        // remote: endpoint base address
	Timeout   time.Duration // remote: per-request timeout
	GenAI     llm.Config    // generated: provider settings
}

// New constructs the Source named by opts.Kind.
func New(ctx context.Context, opts Options) (Source, error) {
	if opts.Length <= 0 {
		opts.Length = DefaultLength
	}

	switch opts.Kind {
	case KindStatic, "":
		list, err := LoadList(opts.WordsFile, opts.Length)
		if err != nil {
			return nil, fmt.Errorf("load word list: %w", err)
		}
		st, err := NewStatic(list)
		if err != nil {
			return nil, err
		}
		log.Info().Int("words", st.Len()).Str("file", opts.WordsFile).Msg("static word source")
		return st, nil

	case KindGenerated:
		gen, err := llm.NewGemini(ctx, opts.GenAI)
		if err != nil {
			return nil, err
		}
		log.Info().Str("generator", gen.Name()).Msg("generated word source")
		return NewGenerated(gen, opts.Length), nil

	case KindRemote:
		if opts.RemoteURL == "" {
			return nil, fmt.Errorf("remote word source needs a base URL")
		}
		log.Info().Str("url", opts.RemoteURL).Msg("remote word source")
		return NewRemote(opts.RemoteURL, opts.Timeout, opts.Length), nil
	}
	return nil, fmt.Errorf("unknown word source %q", opts.Kind)
}
