package words

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{ err error }

func (f failingSource) FetchWord(context.Context) (Entry, error) { return Entry{}, f.err }

func TestLoadList_Embedded(t *testing.T) {
	list, err := LoadList("", DefaultLength)
	require.NoError(t, err)

	// Then: the embedded list is large and keeps duplicates
	assert.Greater(t, len(list), 150)
	seen := map[string]int{}
	for _, w := range list {
		require.Len(t, w, DefaultLength)
		seen[w]++
	}
	assert.Greater(t, seen["KNOCK"], 1)
	assert.Greater(t, seen["ZEBRA"], 1)
}

func TestLoadList_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("# comment\nlemon\n\nkiwi\nMELON\nmelon\nab1de\n"), 0o644))

	list, err := LoadList(path, 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"LEMON", "MELON", "MELON"}, list)
}

func TestLoadList_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("kiwi\nfig\n"), 0o644))

	_, err := LoadList(path, 5)

	require.ErrorIs(t, err, ErrEmptyList)
}

func TestLoadList_MissingFile(t *testing.T) {
	_, err := LoadList(filepath.Join(t.TempDir(), "nope.txt"), 5)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Entry
		want    Entry
		wantErr bool
	}{
		{"uppercases", Entry{Word: " grape ", Hint: " purple "}, Entry{Word: "GRAPE", Hint: "purple"}, false},
		{"too short", Entry{Word: "PEAR"}, Entry{}, true},
		{"too long", Entry{Word: "BANANA"}, Entry{}, true},
		{"empty", Entry{}, Entry{}, true},
		{"not letters", Entry{Word: "AB-DE"}, Entry{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.in, 5)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidWord)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatic(t *testing.T) {
	_, err := NewStatic(nil)
	require.ErrorIs(t, err, ErrEmptyList)

	list := []string{"KNOCK", "OPERA", "KNOCK"}
	s, err := NewStatic(list)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())

	for i := 0; i < 50; i++ {
		e, err := s.FetchWord(context.Background())
		require.NoError(t, err)
		assert.Contains(t, list, e.Word)
		assert.Empty(t, e.Hint)
	}
}

func TestStatic_CanceledContext(t *testing.T) {
	s, err := NewStatic([]string{"APPLE"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.FetchWord(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestFetchOrDefault(t *testing.T) {
	t.Run("success passes through", func(t *testing.T) {
		s, err := NewStatic([]string{"LEMON"})
		require.NoError(t, err)

		e := FetchOrDefault(context.Background(), s)

		assert.Equal(t, Entry{Word: "LEMON"}, e)
	})

	t.Run("failure falls back", func(t *testing.T) {
		e := FetchOrDefault(context.Background(), failingSource{err: errors.New("boom")})

		assert.Equal(t, "APPLE", e.Word)
		assert.Equal(t, "A fruit that keeps the doctor away", e.Hint)
		assert.True(t, e.Fallback)
	})
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	src, err := New(ctx, Options{Kind: KindStatic})
	require.NoError(t, err)
	assert.IsType(t, &Static{}, src)

	src, err = New(ctx, Options{Kind: KindRemote, RemoteURL: "http://localhost:3001"})
	require.NoError(t, err)
	assert.IsType(t, &Remote{}, src)

	_, err = New(ctx, Options{Kind: KindRemote})
	require.Error(t, err)

	_, err = New(ctx, Options{Kind: KindGenerated})
	require.Error(t, err, "generated source needs an API key")

	_, err = New(ctx, Options{Kind: "carrier-pigeon"})
	require.Error(t, err)
}
