package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/robalobadob/wordle/internal/game"
	"github.com/robalobadob/wordle/internal/knowledge"
	"github.com/robalobadob/wordle/internal/scoring"
	"github.com/robalobadob/wordle/internal/word"
)

const helpText = `Guess the secret word, a random five-letter English word.

Make up to (6) guesses.

An 'X' under a letter means you guessed the right letter in the right spot.
An 'O' means the letter you guessed there is in the word, but somewhere else.
An '_' means the letter you guessed there isn't in the word.

Commands: help, ? (show the word), new, quit.`

// indent lines output up with the text typed after the "(6) " prompt.
const indent = "    "

var (
	placedStyle  = pterm.NewStyle(pterm.BgGreen, pterm.FgBlack, pterm.Bold)
	presentStyle = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack, pterm.Bold)
	absentStyle  = pterm.NewStyle(pterm.BgGray, pterm.FgWhite)
)

// renderer writes game output to a terminal.
type renderer struct {
	out    io.Writer
	glyphs scoring.Glyphs
}

func (r renderer) banner() {
	pterm.Fprintln(r.out, pterm.LightGreen("WORDLE!"))
	pterm.Fprintln(r.out, `Type "help" for game rules.`)
}

func (r renderer) help() { pterm.Fprintln(r.out, helpText) }

func (r renderer) secret(g game.Game) {
	pterm.Fprintln(r.out, indent+g.Secret().String())
}

func (r renderer) invalid(err error) {
	pterm.Fprintln(r.out, pterm.LightRed("Invalid word: "+word.Reason(err)))
}

func (r renderer) over() {
	pterm.Fprintln(r.out, `The game is over. Type "new" to play again or "quit" to leave.`)
}

// turn prints the colored tiles, the glyph line and the letter knowledge
// after a guess.
func (r renderer) turn(g game.Game) {
	turns := g.Turns()
	last := turns[len(turns)-1]
	pterm.Fprintln(r.out, indent+tiles(last.Guess, last.Score))
	pterm.Fprintln(r.out, indent+r.glyphs.Render(last.Score)+" // "+knowledgeLine(g.Knowledge()))
}

// result prints the end-of-game message, if the game has ended.
func (r renderer) result(g game.Game) {
	switch g.Status() {
	case game.Won:
		pterm.Fprintln(r.out, pterm.LightGreen("You're a winner, baby!"))
	case game.Lost:
		pterm.Fprintln(r.out, pterm.LightRed("You lost :("))
		pterm.Fprintln(r.out, "The word was: "+g.Secret().String())
	}
}

// tiles renders each letter on a background matching its verdict.
func tiles(guess word.Word, score scoring.WordScore) string {
	var b strings.Builder
	for i, letter := range guess.Letters() {
		st := absentStyle
		switch score[i] {
		case scoring.PlacedCorrectly:
			st = placedStyle
		case scoring.PresentElsewhere:
			st = presentStyle
		}
		b.WriteString(st.Sprint(" " + string(letter) + " "))
	}
	return b.String()
}

func knowledgeLine(k knowledge.Knowledge) string {
	return fmt.Sprintf("good: %s / bad: %s / unknown: %s", k.Good, k.Bad, k.Unknown)
}

func prompt(g game.Game) string {
	if g.Status().Terminal() {
		return "> "
	}
	return fmt.Sprintf("(%d) ", g.RemainingGuesses())
}

