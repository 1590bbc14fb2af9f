// internal/word/word.go
//
// Word is the validated, normalized five-letter value every other package
// compares. Responsibilities:
//   - Parse raw text (dictionary entries, player input) into a Word.
//   - Reject anything that is not exactly five ASCII letters with a typed error.
//   - Normalize to uppercase so equal words are byte-identical.
//
// Notes:
//   - Length is counted in runes, not bytes, so "OBÉIR" is a five-letter word
//     with an invalid character rather than a six-byte word.
//   - Parse does not trim whitespace; input loops do that before calling it.
package word

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Length is the number of letters in every Word.
const Length = 5

// Word is an immutable five-letter word stored in uppercase.
// The zero value is not a valid word; use Parse or MustParse.
type Word struct {
	s string
}

// Parse validates raw and returns its normalized Word.
// On failure the error is a *ParseError wrapping ErrInvalidLength or ErrInvalidCharacters.
func Parse(raw string) (Word, error) {
	if utf8.RuneCountInString(raw) != Length {
		return Word{}, &ParseError{Input: raw, Err: ErrInvalidLength}
	}
	for _, r := range raw {
		if !isASCIILetter(r) {
			return Word{}, &ParseError{Input: raw, Err: ErrInvalidCharacters}
		}
	}
	// Casers carry state, so one is built per call.
	return Word{s: cases.Upper(language.Und).String(raw)}, nil
}

// MustParse is like Parse but panics on invalid input.
// Intended for words known at compile time.
func MustParse(raw string) Word {
	w, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return w
}

// Letters returns the word's letters in order. The slice is a fresh copy.
func (w Word) Letters() []rune {
	return []rune(w.s)
}

// At returns the letter at position i (0-based).
func (w Word) At(i int) rune {
	return rune(w.s[i])
}

// Contains reports whether letter occurs anywhere in the word.
func (w Word) Contains(letter rune) bool {
	for _, r := range w.s {
		if r == letter {
			return true
		}
	}
	return false
}

// String renders the normalized word, e.g. "ADIEU".
func (w Word) String() string { return w.s }

// IsZero reports whether w is the (invalid) zero Word.
func (w Word) IsZero() bool { return w.s == "" }

// MarshalText implements encoding.TextMarshaler.
func (w Word) MarshalText() ([]byte, error) {
	if w.IsZero() {
		return nil, fmt.Errorf("word: marshal zero Word")
	}
	return []byte(w.s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, validating through Parse.
func (w *Word) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
