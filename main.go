// main.go
//
// Entry point for the Wordle HTTP server.
//
// Startup:
//   - load config (.env, optional wordle.yaml, environment),
//   - set the global log level,
//   - load the answer list and open the in-memory daily board,
//   - serve until SIGINT/SIGTERM, then shut down gracefully.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/config"
	"github.com/robalobadob/wordle/internal/daily"
	"github.com/robalobadob/wordle/internal/httpserver"
	"github.com/robalobadob/wordle/internal/store"
	"github.com/robalobadob/wordle/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	list, err := words.Load(cfg.AnswersFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	board, err := daily.Open(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open daily board")
	}
	defer board.Close()

	srv, err := httpserver.New(httpserver.Options{
		Words:        list,
		Scorer:       cfg.Scorer(),
		Sessions:     store.NewMemoryStore(),
		Daily:        board,
		DailySalt:    cfg.DailySalt,
		Tokens:       httpserver.NewTokens(cfg.JWTSecret, cfg.TokenTTL),
		ClientOrigin: cfg.ClientOrigin,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}
	log.Info().
		Str("port", cfg.Port).
		Str("scoring", cfg.Scoring).
		Int("answers", list.Len()).
		Msg("starting go-server")
	if err := srv.Run(ctx, cfg.Addr()); err != nil {
		log.Error().Err(err).Msg("server exited")
		return
	}
	log.Info().Msg("server stopped")
}
