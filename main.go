package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordhint/internal/config"
	"github.com/robalobadob/wordhint/internal/httpserver"
	"github.com/robalobadob/wordhint/internal/play"
	"github.com/robalobadob/wordhint/internal/store"
	"github.com/robalobadob/wordhint/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if os.Getenv("LOG_PRETTY") != "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx := context.Background()

	// Sessions use the configured strategy.
	src, err := words.New(ctx, cfg.WordOptions(cfg.Words.Source))
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.Words.Source).Msg("failed to build word source")
	}

	// /api/word serves the upstream strategy; a remote source would point at ourselves.
	upstream := src
	if cfg.Words.Source == words.KindRemote {
		upstream, err = words.New(ctx, cfg.WordOptions(words.KindStatic))
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build upstream word source")
		}
	}

	svc := play.NewService(src, store.NewMemoryStore())
	srv := httpserver.New(svc, upstream, httpserver.Options{
		Origins:        cfg.ClientOrigins,
		HandlerTimeout: cfg.HandlerTimeout,
	})

	log.Info().Str("port", cfg.Port).Str("source", cfg.Words.Source).Msg("starting wordhint server")
	if err := srv.Start(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
