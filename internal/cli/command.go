// internal/cli/command.go
//
// Terminal game commands and the state transition for each.
//
// Commands (case-insensitive keywords):
//   - ""           nothing
//   - help         print the rules
//   - ?            reveal the secret word
//   - new          start over with a fresh secret
//   - quit, exit   leave
//   - anything else is a guess
//
// ParseCommand and Advance do no I/O; loop.go renders their results.

package cli

import (
	"errors"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/word"
)

var errOneWord = errors.New("enter a single word")

// Kind is what a line of input asks for.
type Kind int

const (
	NoOp Kind = iota
	Help
	Reveal
	NewGame
	Quit
	Guess
	Invalid
)

// Command is a parsed line of input.
type Command struct {
	Kind Kind
	Word word.Word // set for Guess
	Err  error     // set for Invalid
}

// ParseCommand interprets one line of input.
func ParseCommand(line string) Command {
	fields, err := shellquote.Split(line)
	if err != nil {
		return Command{Kind: Invalid, Err: err}
	}
	switch len(fields) {
	case 0:
		return Command{Kind: NoOp}
	case 1:
	default:
		return Command{Kind: Invalid, Err: errOneWord}
	}

	tok := fields[0]
	switch strings.ToLower(tok) {
	case "help":
		return Command{Kind: Help}
	case "?":
		return Command{Kind: Reveal}
	case "new":
		return Command{Kind: NewGame}
	case "quit", "exit":
		return Command{Kind: Quit}
	}

	w, err := word.Parse(tok)
	if err != nil {
		return Command{Kind: Invalid, Err: err}
	}
	return Command{Kind: Guess, Word: w}
}

// Outcome tells the loop what happened so it can render it.
type Outcome int

const (
	Nothing Outcome = iota
	ShowHelp
	ShowSecret
	Scored
	Rejected
	AlreadyOver
	StartOver
	Leave
)

// Advance applies cmd to g. Only Guess changes the game; NewGame and Quit are
// left to the caller, which owns the word list and the input.
func Advance(g game.Game, cmd Command) (game.Game, Outcome) {
	switch cmd.Kind {
	case Help:
		return g, ShowHelp
	case Reveal:
		return g, ShowSecret
	case NewGame:
		return g, StartOver
	case Quit:
		return g, Leave
	case Invalid:
		return g, Rejected
	case Guess:
		next, err := g.Play(cmd.Word)
		if errors.Is(err, game.ErrFinished) {
			return g, AlreadyOver
		}
		return next, Scored
	default:
		return g, Nothing
	}
}
