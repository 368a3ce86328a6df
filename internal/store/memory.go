// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Holds one *game.Session per player, keyed by session ID.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Sessions are copied in and out, so callers never share history slices.
//   - Update runs a read-modify-write under the write lock.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordhint/internal/game"
)

// ErrNotFound is returned for unknown session IDs.
var ErrNotFound = errors.New("not found")

// Store defines the persistence interface for game sessions.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// Get retrieves a copy of a session by ID.
	Get(ctx context.Context, id string) (*game.Session, error)

	// Update applies fn to the stored session atomically and returns the
	// stored result. Changes made by fn are kept even when it returns an
	// error; the error is passed through.
	Update(ctx context.Context, id string, fn func(*game.Session) error) (*game.Session, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*game.Session)}
}

// Save adds or replaces the session in the map.
func (m *memory) Save(ctx context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.Clone()
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s.Clone(), nil
	}
	return nil, ErrNotFound
}

// Update runs fn on a working copy and stores the copy, then returns a
// fresh copy together with fn's error. fn's error does not roll back the
// copy: callers decide what to mutate before failing.
func (m *memory) Update(ctx context.Context, id string, fn func(*game.Session) error) (*game.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	work := s.Clone()
	err := fn(work)
	m.sessions[id] = work
	return work.Clone(), err
}
