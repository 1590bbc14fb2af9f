package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/internal/scoring"
	"github.com/robalobadob/wordle/internal/word"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c, err := Load(t.TempDir())
	is.NoErr(err)

	is.Equal(c.Port, "5175")
	is.Equal(c.Addr(), ":5175")
	is.Equal(c.LogLevel, zerolog.InfoLevel)
	is.Equal(c.AnswersFile, "")
	is.Equal(c.DailySalt, "local_dev_salt")
	is.Equal(c.JWTSecret, "dev_secret_change_me")
	is.Equal(c.TokenTTL, 24*time.Hour)
	is.Equal(c.ClientOrigin, "http://localhost:5173")

	// default scorer does not budget duplicate letters
	s := c.Scorer().Score(word.MustParse("CRANE"), word.MustParse("EERIE"))
	is.Equal(s, scoring.Score(word.MustParse("CRANE"), word.MustParse("EERIE")))
}

func TestEnvOverrides(t *testing.T) {
	is := is.New(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SCORING", "budgeted")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("WORDS_ANSWERS_FILE", "/tmp/answers.txt")

	c, err := Load(t.TempDir())
	is.NoErr(err)
	is.Equal(c.Port, "9000")
	is.Equal(c.LogLevel, zerolog.DebugLevel)
	is.Equal(c.TokenTTL, 90*time.Minute)
	is.Equal(c.AnswersFile, "/tmp/answers.txt")

	s := c.Scorer().Score(word.MustParse("CRANE"), word.MustParse("EERIE"))
	is.Equal(s.String(), "__O_X")
}

func TestConfigFile(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	yaml := "port: \"7000\"\ndaily_salt: pepper\n"
	is.NoErr(os.WriteFile(filepath.Join(dir, "wordle.yaml"), []byte(yaml), 0o644))

	c, err := Load(dir)
	is.NoErr(err)
	is.Equal(c.Port, "7000")
	is.Equal(c.DailySalt, "pepper")

	// env still wins over the file
	t.Setenv("PORT", "7100")
	c, err = Load(dir)
	is.NoErr(err)
	is.Equal(c.Port, "7100")
}

func TestInvalidValues(t *testing.T) {
	for _, tc := range []struct{ key, val string }{
		{"SCORING", "fuzzy"},
		{"LOG_LEVEL", "shouty"},
		{"TOKEN_TTL", "0s"},
	} {
		t.Run(tc.key, func(t *testing.T) {
			is := is.New(t)
			t.Setenv(tc.key, tc.val)
			_, err := Load(t.TempDir())
			is.True(err != nil)
		})
	}
}
