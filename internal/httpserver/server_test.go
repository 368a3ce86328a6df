package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordhint/internal/game"
	"github.com/robalobadob/wordhint/internal/play"
	"github.com/robalobadob/wordhint/internal/store"
	"github.com/robalobadob/wordhint/internal/words"
)

type fixedSource struct {
	entry words.Entry
	err   error
}

func (f fixedSource) FetchWord(context.Context) (words.Entry, error) { return f.entry, f.err }

func newTestServer(src words.Source) *httptest.Server {
	svc := play.NewService(src, store.NewMemoryStore())
	return httptest.NewServer(New(svc, src, Options{Origins: []string{"http://localhost:3000"}}).Router())
}

func do(t *testing.T, method, url, body string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	srv := newTestServer(fixedSource{entry: words.Entry{Word: "GRAPE"}})
	defer srv.Close()

	code, body := do(t, http.MethodGet, srv.URL+"/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["ok"])

	code, body = do(t, http.MethodGet, srv.URL+"/nope", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", body["error"])
}

func TestWordEndpoint(t *testing.T) {
	tests := []struct {
		name string
		src  fixedSource
		code int
		want map[string]any
	}{
		{
			name: "ok",
			src:  fixedSource{entry: words.Entry{Word: "GRAPE", Hint: "Grows in bunches"}},
			code: http.StatusOK,
			want: map[string]any{"word": "GRAPE", "hint": "Grows in bunches"},
		},
		{
			name: "invalid word",
			src:  fixedSource{err: fmt.Errorf("%w: %w", words.ErrWordSource, words.ErrInvalidWord)},
			code: http.StatusInternalServerError,
			want: map[string]any{"error": "Invalid word generated"},
		},
		{
			name: "generator down",
			src:  fixedSource{err: errors.New("quota exceeded")},
			code: http.StatusInternalServerError,
			want: map[string]any{"error": "Failed to generate word"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(tt.src)
			defer srv.Close()

			code, body := do(t, http.MethodGet, srv.URL+"/api/word", "")

			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.want, body)
		})
	}
}

func TestWordEndpoint_FeedsRemoteSource(t *testing.T) {
	// Given: a server whose /api/word fails
	srv := newTestServer(fixedSource{err: errors.New("down")})
	defer srv.Close()

	// When: a remote source fetches from it
	e := words.FetchOrDefault(context.Background(), words.NewRemote(srv.URL, 0, 5))

	// Then: the client falls back
	assert.Equal(t, "APPLE", e.Word)
	assert.True(t, e.Fallback)
}

func TestGameFlow(t *testing.T) {
	srv := newTestServer(fixedSource{entry: words.Entry{Word: "GRAPE", Hint: "Grows in bunches"}})
	defer srv.Close()

	// When: a game is started
	code, body := do(t, http.MethodPost, srv.URL+"/game/new", "")
	require.Equal(t, http.StatusCreated, code)
	id, _ := body["gameId"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, string(game.Active), body["status"])
	assert.EqualValues(t, 5, body["wordLength"])
	assert.EqualValues(t, 5, body["attempts"])
	assert.Nil(t, body["word"], "secret is hidden while active")
	assert.Nil(t, body["hint"], "hint is hidden until toggled")

	base := srv.URL + "/game/" + id

	// When: the hint is toggled
	code, body = do(t, http.MethodPost, base+"/hint", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Grows in bunches", body["hint"])

	// When: a wrong guess is made
	code, body = do(t, http.MethodPost, base+"/guess", `{"guess":"crane"}`)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 4, body["attempts"])
	assert.Equal(t, "4 tries remaining", body["message"])
	history := body["history"].([]any)
	require.Len(t, history, 1)
	first := history[0].(map[string]any)
	assert.Equal(t, "CRANE", first["guess"])
	fb := first["feedback"].([]any)
	assert.Equal(t, map[string]any{"letter": "C", "status": "incorrect"}, fb[0])
	assert.Equal(t, map[string]any{"letter": "R", "status": "correct"}, fb[1])

	// When: the guess is too short
	code, body = do(t, http.MethodPost, base+"/guess", `{"guess":"cat"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "Guess must be 5 letters long!", body["message"])
	assert.EqualValues(t, 4, body["attempts"])

	// When: the guess repeats
	code, body = do(t, http.MethodPost, base+"/guess", `{"guess":"CRANE"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "You've already tried this word!", body["message"])
	assert.Len(t, body["history"], 1)

	// When: the secret is guessed
	code, body = do(t, http.MethodPost, base+"/guess", `{"guess":"grape"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(game.Won), body["status"])
	assert.Equal(t, "GRAPE", body["word"])
	assert.Equal(t, "Congratulations! You've won!", body["message"])

	// Then: guessing again is refused
	code, _ = do(t, http.MethodPost, base+"/guess", `{"guess":"lemon"}`)
	assert.Equal(t, http.StatusConflict, code)

	// When: the game is reset
	code, body = do(t, http.MethodPost, base+"/reset", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, string(game.Active), body["status"])
	assert.EqualValues(t, 5, body["attempts"])
	assert.Empty(t, body["history"])
	assert.Nil(t, body["message"])
	assert.Equal(t, false, body["hintVisible"])

	code, body = do(t, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, id, body["gameId"])
}

func TestGame_Fallback(t *testing.T) {
	srv := newTestServer(fixedSource{err: errors.New("down")})
	defer srv.Close()

	code, body := do(t, http.MethodPost, srv.URL+"/game/new", "")

	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, play.FallbackNotice, body["notice"])
}

func TestGame_Errors(t *testing.T) {
	srv := newTestServer(fixedSource{entry: words.Entry{Word: "GRAPE"}})
	defer srv.Close()

	code, _ := do(t, http.MethodGet, srv.URL+"/game/missing", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = do(t, http.MethodPost, srv.URL+"/game/missing/guess", `{"guess":"GRAPE"}`)
	assert.Equal(t, http.StatusNotFound, code)

	_, body := do(t, http.MethodPost, srv.URL+"/game/new", "")
	code, body = do(t, http.MethodPost, srv.URL+"/game/"+body["gameId"].(string)+"/guess", `{"guess":`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "bad_json", body["error"])
}

func TestCORS(t *testing.T) {
	srv := newTestServer(fixedSource{entry: words.Entry{Word: "GRAPE"}})
	defer srv.Close()

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/word", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "http://localhost:3000", resp.Header.Get("Access-Control-Allow-Origin"))
}
