// internal/game/engine.go
//
// Turn state machine for a single game.
// Responsibilities:
//   - Create a fresh game from a secret word and optional hint.
//   - Validate guesses (length, duplicates) without consuming attempts.
//   - Score accepted guesses and move active → won/lost.
//
// Notes:
//   - Transitions are pure: ApplyGuess and Reset return a new State.
//   - Rejections still return a State whose Message explains the rejection,
//     so a presentation layer can show it; attempts and history are untouched.
package game

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxAttempts is the attempt budget of every game.
const MaxAttempts = 5

var (
	ErrInvalidGuessLength = errors.New("invalid guess length")
	ErrDuplicateGuess     = errors.New("duplicate guess")
	ErrGameOver           = errors.New("game finished")
)

const (
	msgDuplicate = "You've already tried this word!"
	msgWon       = "Congratulations! You've won!"
)

// New constructs an active game for word.
func New(word, hint string) State {
	return State{
		Word:     strings.ToUpper(strings.TrimSpace(word)),
		Hint:     hint,
		Attempts: MaxAttempts,
		History:  []GuessRecord{},
		Status:   Active,
	}
}

// Reset replaces the game wholesale. It is valid from any state.
func Reset(_ State, word, hint string) State {
	return New(word, hint)
}

// ApplyGuess validates and scores a guess.
//
// Validation rules (no attempt consumed, history unchanged):
//   - Game must not be finished (ErrGameOver, state returned as is).
//   - Guess must have as many letters as the secret (ErrInvalidGuessLength).
//   - Guess must not repeat an earlier guess (ErrDuplicateGuess).
//
// State transitions:
//   - Guess equals the secret → Won, attempts unchanged.
//   - Otherwise attempts−1; reaching 0 → Lost with the secret revealed.
func ApplyGuess(s State, guess string) (State, error) {
	if s.Status.Terminal() {
		return s, ErrGameOver
	}
	guess = strings.ToUpper(strings.TrimSpace(guess))

	n := utf8.RuneCountInString(s.Word)
	if utf8.RuneCountInString(guess) != n {
		s.Message = fmt.Sprintf("Guess must be %d letters long!", n)
		return s, ErrInvalidGuessLength
	}
	if s.tried(guess) {
		s.Message = msgDuplicate
		return s, ErrDuplicateGuess
	}

	fb, err := Score(s.Word, guess)
	if err != nil {
		return s, err
	}

	next := s.clone()
	next.History = append(next.History, GuessRecord{Guess: guess, Feedback: fb})

	if allCorrect(fb) {
		next.Status = Won
		next.Message = msgWon
		return next, nil
	}

	next.Attempts--
	if next.Attempts <= 0 {
		next.Attempts = 0
		next.Status = Lost
		next.Message = fmt.Sprintf("Game Over! The word was %s", next.Word)
		return next, nil
	}
	next.Message = fmt.Sprintf("%d tries remaining", next.Attempts)
	return next, nil
}

// tried reports whether guess already appears in history.
func (s State) tried(guess string) bool {
	for _, h := range s.History {
		if h.Guess == guess {
			return true
		}
	}
	return false
}
