// internal/scoring/engine.go
//
// Scoring engine: compares a guess against the secret word.
//
// Two algorithms are provided:
//   - Score (the default): each letter is judged on its own. A letter that is
//     not an exact hit is "present" whenever it occurs anywhere in the secret,
//     so a guess with two E's against a secret with one E can show both as
//     present. Games have always been scored this way.
//   - Budgeted: the classic two-pass Wordle algorithm, where "present" marks
//     are limited by how many copies of the letter remain unmatched.
//
// Both are total over valid Words and have no side effects.
package scoring

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/internal/word"
)

// Scorer compares a guess against a secret.
type Scorer interface {
	Score(secret, guess word.Word) WordScore
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(secret, guess word.Word) WordScore

// Score calls f(secret, guess).
func (f ScorerFunc) Score(secret, guess word.Word) WordScore { return f(secret, guess) }

// The available algorithm variants.
var (
	Simple   Scorer = ScorerFunc(Score)
	Standard Scorer = ScorerFunc(Budgeted)
)

// ScorerByName returns the scorer configured by name: "simple" or "budgeted".
func ScorerByName(name string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "simple":
		return Simple, nil
	case "budgeted", "standard":
		return Standard, nil
	default:
		return nil, fmt.Errorf("scoring: unknown algorithm %q", name)
	}
}

// Score judges each letter of guess against secret independently.
//
// For position i with guessed letter g:
//   - secret[i] == g          → PlacedCorrectly
//   - g occurs in secret      → PresentElsewhere
//   - otherwise               → NotPresent
func Score(secret, guess word.Word) WordScore {
	var res WordScore
	for i, g := range guess.Letters() {
		switch {
		case secret.At(i) == g:
			res[i] = PlacedCorrectly
		case secret.Contains(g):
			res[i] = PresentElsewhere
		default:
			res[i] = NotPresent
		}
	}
	return res
}

// Budgeted implements the standard two-pass Wordle scoring algorithm.
//
// Pass 1:
//   - Mark exact matches as PlacedCorrectly.
//   - Count remaining (non-hit) secret letters.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that
//     letter, mark PresentElsewhere and decrement; otherwise NotPresent.
func Budgeted(secret, guess word.Word) WordScore {
	var res WordScore
	var counts [26]int
	matched := [word.Length]bool{}

	for i := 0; i < word.Length; i++ {
		if guess.At(i) == secret.At(i) {
			res[i] = PlacedCorrectly
			matched[i] = true
		} else {
			counts[idx(secret.At(i))]++
		}
	}

	for i := 0; i < word.Length; i++ {
		if matched[i] {
			continue
		}
		j := idx(guess.At(i))
		if counts[j] > 0 {
			res[i] = PresentElsewhere
			counts[j]--
		} else {
			res[i] = NotPresent
		}
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25. Words are validated upstream.
func idx(r rune) int { return int(r - 'A') }
