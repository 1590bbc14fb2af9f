// internal/config/config.go
//
// Runtime configuration for the server and the terminal game.
//
// Sources, lowest precedence first:
//   - built-in defaults (the same values the server has always used),
//   - an optional wordle.{yaml,json,toml} in the search paths,
//   - a .env file in the working directory (never overrides real env),
//   - environment variables (PORT, LOG_LEVEL, JWT_SECRET, ...).

package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/robalobadob/wordle/internal/scoring"
)

// Config holds every tunable setting.
type Config struct {
	Port         string
	LogLevel     zerolog.Level
	AnswersFile  string
	Scoring      string
	DailySalt    string
	JWTSecret    string
	TokenTTL     time.Duration
	ClientOrigin string
	HistoryFile  string

	scorer scoring.Scorer
}

var defaults = map[string]any{
	"port":               "5175",
	"log_level":          "info",
	"words_answers_file": "",
	"scoring":            "simple",
	"daily_salt":         "local_dev_salt",
	"jwt_secret":         "dev_secret_change_me",
	"token_ttl":          "24h",
	"client_origin":      "http://localhost:5173",
	"history_file":       "",
}

// Load reads configuration. Config files are looked up in paths, or in the
// working directory when none are given.
func Load(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	v.AutomaticEnv()

	v.SetConfigName("wordle")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	lvl, err := zerolog.ParseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}
	ttl := v.GetDuration("token_ttl")
	if ttl <= 0 {
		return nil, fmt.Errorf("token_ttl: must be positive, got %q", v.GetString("token_ttl"))
	}
	sc, err := scoring.ScorerByName(v.GetString("scoring"))
	if err != nil {
		return nil, err
	}
	c := &Config{
		Port:         v.GetString("port"),
		LogLevel:     lvl,
		AnswersFile:  v.GetString("words_answers_file"),
		Scoring:      v.GetString("scoring"),
		DailySalt:    v.GetString("daily_salt"),
		JWTSecret:    v.GetString("jwt_secret"),
		TokenTTL:     ttl,
		ClientOrigin: v.GetString("client_origin"),
		HistoryFile:  v.GetString("history_file"),
		scorer:       sc,
	}
	if c.Port == "" {
		return nil, errors.New("port: must not be empty")
	}
	return c, nil
}

// Scorer returns the scoring algorithm named by the SCORING setting.
func (c *Config) Scorer() scoring.Scorer {
	if c.scorer == nil {
		return scoring.Simple
	}
	return c.scorer
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string { return ":" + c.Port }
