// cmd/wordle/main.go
//
// Terminal Wordle. Reads the same configuration as the server; only
// LOG_LEVEL, WORDS_ANSWERS_FILE, SCORING and HISTORY_FILE matter here.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/cli"
	"github.com/robalobadob/wordle/internal/config"
	"github.com/robalobadob/wordle/internal/words"
)

func main() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	// the game owns stdout; keep routine logs quiet unless asked for
	lvl := cfg.LogLevel
	if lvl < zerolog.WarnLevel && os.Getenv("LOG_LEVEL") == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)

	list, err := words.Load(cfg.AnswersFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	err = cli.Play(ctx, cli.Options{
		Words:       list,
		Scorer:      cfg.Scorer(),
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("terminal game failed")
		os.Exit(1)
	}
}
