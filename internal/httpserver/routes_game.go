// internal/httpserver/routes_game.go
//
// HTTP routes for playing a game. Each client holds one session ID:
//   - POST /game/new         → start a session (word fetched, fallback on failure)
//   - GET  /game/{id}        → current view
//   - POST /game/{id}/guess  → submit {"guess": "..."}
//   - POST /game/{id}/reset  → new word, cleared history, 5 attempts
//   - POST /game/{id}/hint   → toggle hint visibility
//
// Status codes:
//   - 422 for rejected guesses (length, duplicate); the body still carries the view.
//   - 409 for guesses on a finished game.
//   - 404 for unknown sessions.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordhint/internal/game"
	"github.com/robalobadob/wordhint/internal/store"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Get("/{id}", s.handleGetGame)
		r.Post("/{id}/guess", s.handleGuess)
		r.Post("/{id}/reset", s.handleReset)
		r.Post("/{id}/hint", s.handleHint)
	})
}

// gameView is the JSON shape of a session. The secret is only included once
// the game is over, and the hint only while visible.
type gameView struct {
	GameID      string             `json:"gameId"`
	Status      game.Status        `json:"status"`
	WordLength  int                `json:"wordLength"`
	Attempts    int                `json:"attempts"`
	MaxAttempts int                `json:"maxAttempts"`
	History     []game.GuessRecord `json:"history"`
	Message     string             `json:"message,omitempty"`
	Notice      string             `json:"notice,omitempty"`
	HintVisible bool               `json:"hintVisible"`
	Hint        string             `json:"hint,omitempty"`
	Word        string             `json:"word,omitempty"`
	Error       string             `json:"error,omitempty"`
}

func viewOf(sess *game.Session) gameView {
	st := sess.State
	v := gameView{
		GameID:      sess.ID,
		Status:      st.Status,
		WordLength:  utf8.RuneCountInString(st.Word),
		Attempts:    st.Attempts,
		MaxAttempts: game.MaxAttempts,
		History:     st.History,
		Message:     st.Message,
		Notice:      sess.Notice,
		HintVisible: sess.HintVisible,
	}
	if v.History == nil {
		v.History = []game.GuessRecord{}
	}
	if sess.HintVisible {
		v.Hint = st.Hint
	}
	if st.Status.Terminal() {
		v.Word = st.Word
	}
	return v
}

func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.play.Start(r.Context())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("start game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusCreated, viewOf(sess))
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.play.Get(r.Context(), chi.URLParam(r, "id"))
	s.respond(w, r, sess, err)
}

// guessReq is the payload for POST /game/{id}/guess.
type guessReq struct {
	Guess string `json:"guess"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess, err := s.play.Submit(r.Context(), chi.URLParam(r, "id"), req.Guess)
	s.respond(w, r, sess, err)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess, err := s.play.Reset(r.Context(), chi.URLParam(r, "id"))
	s.respond(w, r, sess, err)
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	sess, err := s.play.ToggleHint(r.Context(), chi.URLParam(r, "id"))
	s.respond(w, r, sess, err)
}

// respond maps service errors to status codes and writes the view.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, sess *game.Session, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, viewOf(sess))
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, game.ErrInvalidGuessLength), errors.Is(err, game.ErrDuplicateGuess):
		v := viewOf(sess)
		v.Error = err.Error()
		writeJSON(w, http.StatusUnprocessableEntity, v)
	case errors.Is(err, game.ErrGameOver):
		v := viewOf(sess)
		v.Error = err.Error()
		writeJSON(w, http.StatusConflict, v)
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("game request")
		writeError(w, http.StatusInternalServerError, "server_error")
	}
}
