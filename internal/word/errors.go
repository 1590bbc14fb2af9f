package word

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by ParseError.
var (
	ErrInvalidLength     = errors.New("word must be five letters long")
	ErrInvalidCharacters = errors.New("word must contain only letters from the English alphabet")
)

// ParseError records a failed Parse and why it failed.
type ParseError struct {
	Input string // raw text as given
	Err   error  // ErrInvalidLength or ErrInvalidCharacters
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Kind maps a parse failure to a stable code for API responses:
// "invalid_length", "invalid_characters", or "" when err is not a parse error.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidLength):
		return "invalid_length"
	case errors.Is(err, ErrInvalidCharacters):
		return "invalid_characters"
	default:
		return ""
	}
}

// Reason returns the human-readable cause of a parse failure without the
// quoted input, e.g. "word must be five letters long".
func Reason(err error) string {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}
