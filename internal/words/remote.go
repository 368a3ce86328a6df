package words

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxBody caps how much of a word-fetch response is read.
const maxBody = 64 << 10

// Remote fetches entries from a word-fetch endpoint (GET <base>/api/word).
type Remote struct {
	url    string
	client *http.Client
	length int
}

// NewRemote targets baseURL. A zero timeout leaves the client unbounded.
func NewRemote(baseURL string, timeout time.Duration, length int) *Remote {
	if length <= 0 {
		length = DefaultLength
	}
	return &Remote{
		url:    strings.TrimRight(baseURL, "/") + "/api/word",
		client: &http.Client{Timeout: timeout},
		length: length,
	}
}

// errorBody is the endpoint's failure shape.
type errorBody struct {
	Error string `json:"error"`
}

// FetchWord performs one GET. Transport errors, non-2xx statuses, malformed
// bodies and invalid words are all wrapped with ErrWordSource.
func (r *Remote) FetchWord(ctx context.Context) (Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %w", ErrWordSource, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %w", ErrWordSource, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return Entry{}, fmt.Errorf("%w: read body: %w", ErrWordSource, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		if eb.Error == "" {
			eb.Error = http.StatusText(resp.StatusCode)
		}
		return Entry{}, fmt.Errorf("%w: status %d: %s", ErrWordSource, resp.StatusCode, eb.Error)
	}

	var e Entry
	if err := json.Unmarshal(body, &e); err != nil {
		return Entry{}, fmt.Errorf("%w: decode body: %w", ErrWordSource, err)
	}
	e, err = Validate(e, r.length)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: %w", ErrWordSource, err)
	}
	return e, nil
}
