package knowledge

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Alphabet is every letter a Word may contain, in order.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// LetterSet is a set of uppercase ASCII letters, one bit per letter.
// It is a value type: methods return new sets and never share state.
type LetterSet uint32

// All contains the full alphabet.
const All LetterSet = 1<<len(Alphabet) - 1

func bit(letter rune) LetterSet {
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return 1 << uint(letter-'A')
}

// SetOf builds a set from letters; anything outside A–Z is ignored.
func SetOf(letters ...rune) LetterSet {
	var s LetterSet
	for _, l := range letters {
		s |= bit(l)
	}
	return s
}

func (s LetterSet) Add(letter rune) LetterSet    { return s | bit(letter) }
func (s LetterSet) Remove(letter rune) LetterSet { return s &^ bit(letter) }
func (s LetterSet) Has(letter rune) bool         { return bit(letter) != 0 && s&bit(letter) != 0 }

func (s LetterSet) Union(o LetterSet) LetterSet     { return s | o }
func (s LetterSet) Intersect(o LetterSet) LetterSet { return s & o }

// Len returns the number of letters in the set.
func (s LetterSet) Len() int { return len(s.Letters()) }

// Letters returns the members in alphabetical order.
func (s LetterSet) Letters() []rune {
	return lo.Filter([]rune(Alphabet), func(r rune, _ int) bool {
		return s.Has(r)
	})
}

// String renders the members in alphabetical order, e.g. "AEN".
func (s LetterSet) String() string { return string(s.Letters()) }

// MarshalText encodes the set as its alphabetical letters.
func (s LetterSet) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText accepts letters in either case and rejects anything else.
// On error s is left unchanged.
func (s *LetterSet) UnmarshalText(text []byte) error {
	var out LetterSet
	for _, r := range strings.ToUpper(string(text)) {
		b := bit(r)
		if b == 0 {
			return fmt.Errorf("knowledge: invalid letter %q", r)
		}
		out |= b
	}
	*s = out
	return nil
}
