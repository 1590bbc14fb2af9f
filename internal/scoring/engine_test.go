package scoring

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"

	"github.com/robalobadob/wordle/internal/word"
)

const (
	X = PlacedCorrectly
	O = PresentElsewhere
	U = NotPresent
)

func TestVerdictGlyphs(t *testing.T) {
	is := is.New(t)
	is.Equal(X.String(), "X")
	is.Equal(O.String(), "O")
	is.Equal(U.String(), "_")
}

func TestWordScoreIsWin(t *testing.T) {
	is := is.New(t)
	is.True(WordScore{X, X, X, X, X}.IsWin())

	losers := []WordScore{
		{X, X, U, O, U},
		{O, O, O, O, O},
		{U, U, U, U, U},
		{X, X, X, X, O},
		{U, X, X, X, X},
	}
	for _, s := range losers {
		is.True(!s.IsWin())
	}
	is.True(!WordScore{}.IsWin()) // zero value is all NotPresent
}

func TestWordScoreString(t *testing.T) {
	is := is.New(t)
	is.Equal(WordScore{X, O, U, O, O}.String(), "XO_OO")
	is.Equal(WordScore{U, U, X, X, X}.String(), "__XXX")
	is.Equal(WordScore{O, X, O, O, U}.String(), "OXOO_")
}

func TestScore(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		secret, guess string
		want          string
	}{
		{"CRANE", "BROWN", "_X__O"},
		{"SPICE", "SPACE", "XX_XX"},
		{"JANUS", "JANUS", "XXXXX"},
		{"DRAKE", "ADIEU", "OO_O_"},
		// non-budgeted: both E's are present although CRANE has one E
		{"CRANE", "EERIE", "OOO_X"},
		{"ABBEY", "BABES", "OOXX_"},
	}
	for _, c := range cases {
		got := Score(word.MustParse(c.secret), word.MustParse(c.guess))
		is.Equal(got.String(), c.want)
	}
}

func TestBudgeted(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		secret, guess string
		want          string
	}{
		{"CRANE", "BROWN", "_X__O"},
		{"SPICE", "SPACE", "XX_XX"},
		{"CRANE", "EERIE", "__O_X"},
		{"ABBEY", "BABES", "OOXX_"},
		{"ROBOT", "FLOOR", "__OXO"},
	}
	for _, c := range cases {
		got := Budgeted(word.MustParse(c.secret), word.MustParse(c.guess))
		is.Equal(got.String(), c.want)
	}
}

func TestSelfGuessAlwaysWins(t *testing.T) {
	is := is.New(t)
	for _, raw := range []string{"CIGAR", "SISSY", "HUMPH", "EERIE", "QAJAQ"} {
		w := word.MustParse(raw)
		is.True(Score(w, w).IsWin())
		is.True(Budgeted(w, w).IsWin())
	}
}

func TestScorerByName(t *testing.T) {
	is := is.New(t)
	secret, guess := word.MustParse("CRANE"), word.MustParse("EERIE")

	s, err := ScorerByName("")
	is.NoErr(err)
	is.Equal(s.Score(secret, guess).String(), "OOO_X")

	s, err = ScorerByName("Budgeted")
	is.NoErr(err)
	is.Equal(s.Score(secret, guess).String(), "__O_X")

	_, err = ScorerByName("fuzzy")
	is.True(err != nil)
}

func TestVerdictJSON(t *testing.T) {
	is := is.New(t)
	out, err := json.Marshal(WordScore{X, O, U, U, X})
	is.NoErr(err)
	is.Equal(string(out), `["hit","present","miss","miss","hit"]`)

	var back WordScore
	is.NoErr(json.Unmarshal(out, &back))
	is.Equal(back, WordScore{X, O, U, U, X})
}

func TestCustomGlyphs(t *testing.T) {
	is := is.New(t)
	g := Glyphs{Placed: 'G', Present: 'Y', Absent: '.'}
	is.Equal(g.Render(WordScore{X, O, U, O, X}), "GY.YG")
}
