// internal/game/engine.go
//
// Game state machine for a single Wordle game.
// Responsibilities:
//   - Create new games around an already-validated secret Word.
//   - Apply guesses: score, update letter knowledge, append to history.
//   - Derive status: playing → won/lost.
//
// Notes:
//   - Guesses arrive as word.Word, so validation errors never reach here.
//   - SubmitGuess is total; Play additionally refuses moves after the game
//     has ended and is what the input loops use.
//   - Callers sharing one Game across goroutines must serialize transitions
//     themselves (see internal/store).
package game

import (
	"github.com/robalobadob/wordle/internal/knowledge"
	"github.com/robalobadob/wordle/internal/scoring"
	"github.com/robalobadob/wordle/internal/word"
)

// New constructs a game with an empty history and no letter knowledge.
// Scoring defaults to scoring.Simple.
func New(secret word.Word, opts ...Option) Game {
	g := Game{
		secret:    secret,
		knowledge: knowledge.New(),
		scorer:    scoring.Simple,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// SubmitGuess scores guess against the secret and returns the next state.
// Repeated guesses are allowed and recorded again. The receiver is unchanged.
// A Game built without New scores with scoring.Simple.
func (g Game) SubmitGuess(guess word.Word) Game {
	scorer := g.scorer
	if scorer == nil {
		scorer = scoring.Simple
	}
	score := scorer.Score(g.secret, guess)

	turns := make([]Turn, len(g.turns), len(g.turns)+1)
	copy(turns, g.turns)
	g.turns = append(turns, Turn{Guess: guess, Score: score})
	g.knowledge = g.knowledge.Update(g.secret, guess)
	return g
}

// Play is SubmitGuess guarded by status: it returns ErrFinished and the
// unchanged game once the game has been won or lost.
func (g Game) Play(guess word.Word) (Game, error) {
	if g.Status().Terminal() {
		return g, ErrFinished
	}
	return g.SubmitGuess(guess), nil
}

// Status reports the current state.
//
//   - Won:    the most recent guess scored all PlacedCorrectly.
//   - Lost:   not won, and MaxGuesses guesses have been made.
//   - Active: otherwise, including before the first guess.
func (g Game) Status() Status {
	if last, ok := g.LastScore(); ok && last.IsWin() {
		return Won
	}
	if len(g.turns) >= MaxGuesses {
		return Lost
	}
	return Active
}

// RemainingGuesses is MaxGuesses minus the number of guesses made.
func (g Game) RemainingGuesses() int {
	return MaxGuesses - len(g.turns)
}

// LastScore returns the score of the most recent guess, or false before any guess.
func (g Game) LastScore() (scoring.WordScore, bool) {
	if len(g.turns) == 0 {
		return scoring.WordScore{}, false
	}
	return g.turns[len(g.turns)-1].Score, true
}

// Secret returns the word being guessed.
func (g Game) Secret() word.Word { return g.secret }

// Knowledge returns the letter knowledge gathered so far.
func (g Game) Knowledge() knowledge.Knowledge { return g.knowledge }

// Turns returns a copy of the history in turn order.
func (g Game) Turns() []Turn {
	out := make([]Turn, len(g.turns))
	copy(out, g.turns)
	return out
}

// TurnCount returns the number of guesses made.
func (g Game) TurnCount() int { return len(g.turns) }
