// internal/game/types.go
//
// Core type definitions for the game state machine.
// Defines:
//   - Status: derived game state (playing/won/lost).
//   - Turn: one guess and its score.
//   - Game: the aggregate root for a single game.

package game

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/internal/knowledge"
	"github.com/robalobadob/wordle/internal/scoring"
	"github.com/robalobadob/wordle/internal/word"
)

// MaxGuesses is the number of guesses a player gets.
const MaxGuesses = 6

// ErrFinished is returned by Play once the game has been won or lost.
var ErrFinished = errors.New("game finished")

// Status is derived from the history; it is never stored.
type Status uint8

const (
	Active Status = iota
	Won
	Lost
)

var statusNames = [...]string{
	Active: "playing",
	Won:    "won",
	Lost:   "lost",
}

// String reports "playing", "won" or "lost".
func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", s)
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool { return s == Won || s == Lost }

// Turn is one recorded guess and its score.
type Turn struct {
	Guess word.Word         `json:"guess"`
	Score scoring.WordScore `json:"marks"`
}

// Game holds the state of a single game. It is a value type: transitions
// return a new Game and never modify the receiver or its history.
type Game struct {
	secret    word.Word
	turns     []Turn
	knowledge knowledge.Knowledge
	scorer    scoring.Scorer
}

// Option configures a new Game.
type Option func(*Game)

// WithScorer selects the scoring algorithm. Nil keeps the default.
func WithScorer(s scoring.Scorer) Option {
	return func(g *Game) {
		if s != nil {
			g.scorer = s
		}
	}
}
