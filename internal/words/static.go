package words

import (
	"context"
	"crypto/rand"
	"math/big"
)

// Static picks uniformly at random from a fixed list. Duplicate entries are
// sampled like any other entry.
type Static struct {
	list []string
}

// NewStatic copies list. It fails only for an empty list.
func NewStatic(list []string) (*Static, error) {
	if len(list) == 0 {
		return nil, ErrEmptyList
	}
	return &Static{list: append([]string(nil), list...)}, nil
}

// FetchWord returns a cryptographically random entry. Static words carry no hint.
func (s *Static) FetchWord(ctx context.Context) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(s.list))))
	if err != nil {
		return Entry{}, err
	}
	return Entry{Word: s.list[nBig.Int64()]}, nil
}

// Len reports the number of entries, duplicates included.
func (s *Static) Len() int { return len(s.list) }
