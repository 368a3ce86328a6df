// internal/words/words.go
//
// Word sources for the game engine.
//
// Responsibilities:
//   - Define the Source capability: FetchWord(ctx) → (word, hint).
//   - Load the static word list from a file or the embedded default.
//   - Validate candidate words and provide the fixed fallback entry.
//
// Strategies:
//   - Static:    uniform random pick from an in-memory list.
//   - Generated: one JSON-mode request to a text generator.
//   - Remote:    one GET to a word-fetch endpoint (/api/word).
//
// Callers that must never fail use FetchOrDefault, which substitutes the
// fallback entry on any error.

package words

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordhint/assets"
)

// DefaultLength is the word length of the observed configuration.
const DefaultLength = 5

var (
	ErrWordSource  = errors.New("word source failure")
	ErrInvalidWord = errors.New("invalid word generated")
	ErrEmptyList   = errors.New("word list is empty")
)

// Entry is one secret word and its optional hint.
type Entry struct {
	Word     string `json:"word"`
	Hint     string `json:"hint,omitempty"`
	Fallback bool   `json:"-"` // set by FetchOrDefault when Default was substituted
}

// Default is used whenever a source fails.
var Default = Entry{Word: "APPLE", Hint: "A fruit that keeps the doctor away"}

// Source supplies secret words. Implementations are selected at construction.
type Source interface {
	FetchWord(ctx context.Context) (Entry, error)
}

// FetchOrDefault fetches one entry from src and never fails: any error is
// logged and replaced by Default with Fallback set. There is no retry.
func FetchOrDefault(ctx context.Context, src Source) Entry {
	e, err := src.FetchWord(ctx)
	if err != nil {
		log.Warn().Err(err).Str("fallback", Default.Word).Msg("word fetch failed")
		d := Default
		d.Fallback = true
		return d
	}
	return e
}

// Validate normalizes e.Word to uppercase and checks it is exactly length
// ASCII letters.
func Validate(e Entry, length int) (Entry, error) {
	e.Word = strings.ToUpper(strings.TrimSpace(e.Word))
	e.Hint = strings.TrimSpace(e.Hint)
	if e.Word == "" {
		return e, fmt.Errorf("%w: empty word", ErrInvalidWord)
	}
	if n := utf8.RuneCountInString(e.Word); n != length {
		return e, fmt.Errorf("%w: %q has %d letters, want %d", ErrInvalidWord, e.Word, n, length)
	}
	if !isAlpha(e.Word) {
		return e, fmt.Errorf("%w: %q is not alphabetic", ErrInvalidWord, e.Word)
	}
	return e, nil
}

// LoadList returns the static word list.
//
// Behavior:
//  1. If path is set, the file is read (one word per line, # comments allowed).
//  2. Otherwise the embedded assets/words.txt is used.
//
// Entries that are not length letters are dropped. Duplicates are kept.
// An empty result is ErrEmptyList.
func LoadList(path string, length int) ([]string, error) {
	var (
		raw []string
		err error
	)
	if path != "" {
		raw, err = readWordFile(path)
	} else {
		raw, err = assets.WordList()
	}
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(raw))
	for _, w := range raw {
		if utf8.RuneCountInString(w) == length && isAlpha(w) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyList
	}
	return out, nil
}

// readWordFile loads a word list from disk.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
