package game

import (
	"errors"
	"strings"
)

// ErrLengthMismatch is returned when secret and guess differ in length;
// feedback is undefined in that case.
var ErrLengthMismatch = errors.New("guess and secret differ in length")

// Score implements the standard two-pass Wordle feedback rule.
//
// Pass 1:
//   - Mark exact matches as correct and consume one occurrence of that
//     letter from the secret's letter budget.
//
// Pass 2:
//   - For each remaining position: if the budget still holds that letter,
//     mark wrong-position and consume it; otherwise mark incorrect.
//
// Exact matches must consume budget first, otherwise a repeated letter can be
// credited as wrong-position when it is already accounted for elsewhere.
func Score(secret, guess string) ([]LetterFeedback, error) {
	s := []rune(strings.ToUpper(secret))
	g := []rune(strings.ToUpper(guess))
	if len(s) != len(g) {
		return nil, ErrLengthMismatch
	}

	remaining := make(map[rune]int, len(s))
	for _, r := range s {
		remaining[r]++
	}

	out := make([]LetterFeedback, len(g))
	for i, r := range g {
		if r == s[i] {
			out[i] = LetterFeedback{Letter: string(r), Status: StatusCorrect}
			remaining[r]--
		}
	}

	for i, r := range g {
		if out[i].Status != "" {
			continue
		}
		if remaining[r] > 0 {
			out[i] = LetterFeedback{Letter: string(r), Status: StatusWrongPosition}
			remaining[r]--
		} else {
			out[i] = LetterFeedback{Letter: string(r), Status: StatusIncorrect}
		}
	}
	return out, nil
}

// allCorrect returns true if every position is correct.
func allCorrect(fb []LetterFeedback) bool {
	for _, f := range fb {
		if f.Status != StatusCorrect {
			return false
		}
	}
	return true
}
