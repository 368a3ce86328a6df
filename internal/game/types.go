// internal/game/types.go
//
// Core type definitions for the word-guessing engine.
// Defines:
//   - FeedbackStatus: per-letter result of a guess (correct/wrong-position/incorrect).
//   - GuessRecord: one evaluated guess, appended to history in submission order.
//   - State: everything the engine knows about one game.
//   - Session: a State plus the per-player presentation flags kept by the server.

package game

// FeedbackStatus represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct":        letter matches the same position in the secret word.
//   - "wrong-position": letter is in the secret word elsewhere (multiplicity-aware).
//   - "incorrect":      no unconsumed occurrence of the letter remains.
type FeedbackStatus string

const (
	StatusCorrect       FeedbackStatus = "correct"
	StatusWrongPosition FeedbackStatus = "wrong-position"
	StatusIncorrect     FeedbackStatus = "incorrect"
)

// LetterFeedback is the verdict for one position of a guess.
type LetterFeedback struct {
	Letter string         `json:"letter"`
	Status FeedbackStatus `json:"status"`
}

// GuessRecord pairs a normalized guess with its per-position feedback.
type GuessRecord struct {
	Guess    string           `json:"guess"`
	Feedback []LetterFeedback `json:"feedback"`
}

// Status is the turn state of a game.
type Status string

const (
	Active Status = "active"
	Won    Status = "won"
	Lost   Status = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool { return s == Won || s == Lost }

// State holds a single game. Values are treated as immutable: transitions
// return a new State instead of mutating the receiver.
type State struct {
	Word     string        // Secret word (always uppercase).
	Hint     string        // Optional hint for Word.
	Attempts int           // Remaining attempts, 0..MaxAttempts.
	History  []GuessRecord // Evaluated guesses, oldest first.
	Status   Status        // active | won | lost.
	Message  string        // Last user-facing message, "" after a reset.
}

// Session is a State owned by one player, keyed by ID in the store.
type Session struct {
	ID          string
	State       State
	HintVisible bool   // toggled by the player, hidden again on reset
	Notice      string // word-source notice, e.g. the fallback message
}

// Clone returns a deep copy so callers never share the history slice.
func (s *Session) Clone() *Session {
	c := *s
	c.State = s.State.clone()
	return &c
}

func (s State) clone() State {
	if s.History != nil {
		h := make([]GuessRecord, len(s.History))
		copy(h, s.History)
		s.History = h
	}
	return s
}
