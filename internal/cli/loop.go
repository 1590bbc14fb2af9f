// internal/cli/loop.go
//
// Read-eval-print loop for the terminal game.
//
// Responsibilities:
//   - Read lines through readline (history, line editing, ^C handling).
//   - Turn each line into a Command, apply it with Advance, render the result.
//   - Start a fresh game on "new"; stop on "quit", EOF or ^C on an empty line.

package cli

import (
	"context"
	"errors"
	"io"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/scoring"
	"github.com/robalobadob/wordle/internal/word"
)

// Picker supplies secret words.
type Picker interface {
	Random() word.Word
}

// LineReader is the input side of the loop. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// Options configure a terminal session.
type Options struct {
	Words       Picker
	Scorer      scoring.Scorer
	Glyphs      scoring.Glyphs
	HistoryFile string
}

// Session is one terminal player's sequence of games.
type Session struct {
	opts Options
	r    renderer
	game game.Game
}

// NewSession prepares a session writing to out. It starts with a fresh game.
func NewSession(opts Options, out io.Writer) *Session {
	if opts.Glyphs == (scoring.Glyphs{}) {
		opts.Glyphs = scoring.DefaultGlyphs
	}
	s := &Session{opts: opts, r: renderer{out: out, glyphs: opts.Glyphs}}
	s.newGame()
	return s
}

// Game returns the current game.
func (s *Session) Game() game.Game { return s.game }

func (s *Session) newGame() {
	s.game = game.New(s.opts.Words.Random(), game.WithScorer(s.opts.Scorer))
	log.Debug().Msg("new terminal game")
}

// Run reads commands from in until the player quits, input ends, or ctx is
// cancelled.
func (s *Session) Run(ctx context.Context, in LineReader) error {
	s.r.banner()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		in.SetPrompt(prompt(s.game))
		line, err := in.Readline()
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		if !s.Execute(line) {
			return nil
		}
	}
}

// Execute runs one line of input and reports whether to keep going.
func (s *Session) Execute(line string) bool {
	cmd := ParseCommand(line)
	next, outcome := Advance(s.game, cmd)
	s.game = next

	switch outcome {
	case ShowHelp:
		s.r.help()
	case ShowSecret:
		s.r.secret(s.game)
	case Rejected:
		s.r.invalid(cmd.Err)
	case AlreadyOver:
		s.r.over()
	case Scored:
		s.r.turn(s.game)
		s.r.result(s.game)
	case StartOver:
		s.newGame()
	case Leave:
		return false
	}
	return true
}

// Play runs a session on the terminal through readline.
func Play(ctx context.Context, opts Options) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "(6) ",
		HistoryFile:     opts.HistoryFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	// Readline blocks until a line arrives; closing the instance unblocks it.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			rl.Close()
		case <-done:
		}
	}()

	return NewSession(opts, rl.Stdout()).Run(ctx, rl)
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
