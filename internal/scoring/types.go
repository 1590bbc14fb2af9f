// internal/scoring/types.go
//
// Core type definitions for the scoring engine.
// Defines:
//   - Verdict: per-letter result of a guess.
//   - WordScore: the five verdicts for one guess, in guess order.

package scoring

import (
	"fmt"

	"github.com/robalobadob/wordle/internal/word"
)

// Verdict is the evaluation result for a single letter of a guess.
type Verdict uint8

const (
	// NotPresent: the letter does not occur anywhere in the secret.
	NotPresent Verdict = iota
	// PresentElsewhere: the letter occurs in the secret, but not at this position.
	PresentElsewhere
	// PlacedCorrectly: the letter matches the secret at this exact position.
	PlacedCorrectly
)

// Wire names match the marks the JSON API has always used.
var verdictNames = [...]string{
	NotPresent:       "miss",
	PresentElsewhere: "present",
	PlacedCorrectly:  "hit",
}

// String renders the verdict's default glyph.
func (v Verdict) String() string {
	return string(DefaultGlyphs.Glyph(v))
}

// MarshalText encodes the verdict as "hit", "present" or "miss".
func (v Verdict) MarshalText() ([]byte, error) {
	if int(v) >= len(verdictNames) {
		return nil, fmt.Errorf("scoring: unknown verdict %d", v)
	}
	return []byte(verdictNames[v]), nil
}

// UnmarshalText decodes "hit", "present" or "miss".
func (v *Verdict) UnmarshalText(text []byte) error {
	for i, name := range verdictNames {
		if name == string(text) {
			*v = Verdict(i)
			return nil
		}
	}
	return fmt.Errorf("scoring: unknown verdict %q", text)
}

// WordScore is the score for one guess. Its length always equals word.Length.
type WordScore [word.Length]Verdict

// IsWin reports whether every letter was placed correctly.
func (s WordScore) IsWin() bool {
	for _, v := range s {
		if v != PlacedCorrectly {
			return false
		}
	}
	return true
}

// String concatenates the default glyphs, e.g. "_X__O".
func (s WordScore) String() string {
	return DefaultGlyphs.Render(s)
}
