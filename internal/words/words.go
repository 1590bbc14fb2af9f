// internal/words/words.go
//
// Provides the answer list the game picks secret words from.
//
// Responsibilities:
//   - Load answers from a file (one word per line) or fall back to the
//     embedded default list in assets/answers.txt.
//   - Validate every entry through word.Parse so the game only ever sees
//     valid Words.
//   - Supply Random, At and Len for normal and daily games.
//
// Word lists:
//   - Blank lines and '#' comments are ignored.
//   - Entries that fail validation are skipped and logged.
//   - Duplicates (after normalization) are dropped.
//
// Guesses are never checked against this list; any valid Word is playable.

package words

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/robalobadob/wordle/assets"
	"github.com/robalobadob/wordle/internal/word"
)

// ErrEmpty is returned when a list ends up with no valid words.
var ErrEmpty = errors.New("words: answers list is empty")

// List is an immutable, validated answer list.
type List struct {
	answers []word.Word
	source  string
}

// Load reads answers from path, or from the embedded defaults when path is empty.
func Load(path string) (*List, error) {
	var (
		lines  []string
		err    error
		source = "embedded"
	)
	if path == "" {
		lines, err = assets.AnswersList()
	} else {
		source = path
		lines, err = readWordFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}

	l, err := FromStrings(lines)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	l.source = source
	log.Debug().Str("source", source).Int("answers", l.Len()).Msg("loaded word list")
	return l, nil
}

// FromStrings validates raw entries into a List.
func FromStrings(raw []string) (*List, error) {
	valid := make([]word.Word, 0, len(raw))
	for _, s := range raw {
		w, err := word.Parse(s)
		if err != nil {
			log.Warn().Err(err).Msg("skipping invalid word list entry")
			continue
		}
		valid = append(valid, w)
	}
	valid = lo.Uniq(valid)
	if len(valid) == 0 {
		return nil, ErrEmpty
	}
	return &List{answers: valid, source: "inline"}, nil
}

// readWordFile loads one entry per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// Random returns a uniformly random answer.
func (l *List) Random() word.Word {
	return l.answers[frand.Intn(len(l.answers))]
}

// At returns the i-th answer. Used by the daily challenge.
func (l *List) At(i int) word.Word { return l.answers[i] }

// Len returns the number of answers.
func (l *List) Len() int { return len(l.answers) }

// Source names where the list came from ("embedded" or a file path).
func (l *List) Source() string { return l.source }
