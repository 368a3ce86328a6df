// internal/httpserver/routes_word.go
//
// GET /api/word: the word-fetch endpoint.
//   - 200 {"word": "GRAPE", "hint": "..."} from the upstream source.
//   - 500 {"error": "Invalid word generated"} when the word fails validation.
//   - 500 {"error": "Failed to generate word"} for any other failure.
//
// No fallback happens here: clients fall back on any non-2xx response.

package httpserver

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/wordhint/internal/words"
)

func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	e, err := s.upstream.FetchWord(r.Context())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("generate word")
		if errors.Is(err, words.ErrInvalidWord) {
			writeError(w, http.StatusInternalServerError, "Invalid word generated")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to generate word")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"word": e.Word, "hint": e.Hint})
}
