// internal/knowledge/knowledge.go
//
// Letter knowledge: what the player has learned about each letter across all
// guesses so far.
//
//   - Good:    guessed letters that occur somewhere in the secret.
//   - Bad:     guessed letters that do not occur in the secret.
//   - Unknown: letters never guessed.
//
// Invariants kept by Update:
//   - Good ∪ Bad ∪ Unknown is the full alphabet.
//   - Good ∩ Bad is empty.
//   - Good and Bad only grow; a classified letter is never moved.
package knowledge

import (
	"github.com/samber/lo"

	"github.com/robalobadob/wordle/internal/word"
)

// Knowledge partitions the alphabet into good, bad and unknown letters.
type Knowledge struct {
	Good    LetterSet `json:"good"`
	Bad     LetterSet `json:"bad"`
	Unknown LetterSet `json:"unknown"`
}

// New returns the starting knowledge: every letter unknown.
func New() Knowledge {
	return Knowledge{Unknown: All}
}

// Update classifies every distinct letter of guess by membership in secret,
// independent of position, and returns the new knowledge. k is not modified.
func (k Knowledge) Update(secret, guess word.Word) Knowledge {
	for _, letter := range lo.Uniq(guess.Letters()) {
		k.Unknown = k.Unknown.Remove(letter)
		if k.Classified(letter) {
			continue
		}
		if secret.Contains(letter) {
			k.Good = k.Good.Add(letter)
		} else {
			k.Bad = k.Bad.Add(letter)
		}
	}
	return k
}

// Classified reports whether letter is already known to be good or bad.
func (k Knowledge) Classified(letter rune) bool {
	return k.Good.Has(letter) || k.Bad.Has(letter)
}

// Valid reports whether k partitions the alphabet.
func (k Knowledge) Valid() bool {
	return k.Good.Intersect(k.Bad) == 0 &&
		k.Good.Intersect(k.Unknown) == 0 &&
		k.Bad.Intersect(k.Unknown) == 0 &&
		k.Good.Union(k.Bad).Union(k.Unknown) == All
}
