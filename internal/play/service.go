// Package play runs player-facing operations against stored sessions:
// start, submit a guess, reset, toggle hint visibility.
package play

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordhint/internal/game"
	"github.com/robalobadob/wordhint/internal/store"
	"github.com/robalobadob/wordhint/internal/words"
)

// FallbackNotice is shown when the word source failed and Default was used.
var FallbackNotice = fmt.Sprintf("Failed to get a new word. Using default word '%s'", words.Default.Word)

// Service binds a word source to a session store.
type Service struct {
	src   words.Source
	store store.Store
	newID func() string
}

// NewService returns a Service. The source is fixed for its lifetime.
func NewService(src words.Source, st store.Store) *Service {
	return &Service{src: src, store: st, newID: uuid.NewString}
}

// Start fetches a word and stores a fresh active session.
func (s *Service) Start(ctx context.Context) (*game.Session, error) {
	e := words.FetchOrDefault(ctx, s.src)
	sess := &game.Session{
		ID:     s.newID(),
		State:  game.New(e.Word, e.Hint),
		Notice: notice(e),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	log.Debug().Str("session", sess.ID).Bool("fallback", e.Fallback).Msg("game started")
	return sess, nil
}

// Get returns the session with the given ID.
func (s *Service) Get(ctx context.Context, id string) (*game.Session, error) {
	return s.store.Get(ctx, id)
}

// Submit applies one guess. Rejections (length, duplicate) keep their
// message on the session and are returned as errors; so is a guess on a
// finished game.
func (s *Service) Submit(ctx context.Context, id, guess string) (*game.Session, error) {
	sess, err := s.store.Update(ctx, id, func(sess *game.Session) error {
		next, err := game.ApplyGuess(sess.State, guess)
		sess.State = next
		return err
	})
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		log.Debug().Err(err).Str("session", id).Msg("guess rejected")
	}
	if sess != nil && sess.State.Status.Terminal() && err == nil {
		log.Info().Str("session", id).Str("status", string(sess.State.Status)).
			Int("guesses", len(sess.State.History)).Msg("game finished")
	}
	return sess, err
}

// Reset loads a new word and starts over from any state. The word is
// fetched before the session is locked; the new state replaces the old one
// in a single update.
func (s *Service) Reset(ctx context.Context, id string) (*game.Session, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, err
	}
	e := words.FetchOrDefault(ctx, s.src)
	return s.store.Update(ctx, id, func(sess *game.Session) error {
		sess.State = game.Reset(sess.State, e.Word, e.Hint)
		sess.HintVisible = false
		sess.Notice = notice(e)
		return nil
	})
}

// ToggleHint flips hint visibility.
func (s *Service) ToggleHint(ctx context.Context, id string) (*game.Session, error) {
	return s.store.Update(ctx, id, func(sess *game.Session) error {
		sess.HintVisible = !sess.HintVisible
		return nil
	})
}

func notice(e words.Entry) string {
	if e.Fallback {
		return FallbackNotice
	}
	return ""
}
