package knowledge

import (
	"encoding/json"
	"testing"

	"github.com/matryer/is"

	"github.com/robalobadob/wordle/internal/word"
)

func TestNew(t *testing.T) {
	is := is.New(t)
	k := New()
	is.Equal(k.Good.Len(), 0)
	is.Equal(k.Bad.Len(), 0)
	is.Equal(k.Unknown.Len(), 26)
	is.Equal(k.Unknown.String(), Alphabet)
	is.True(k.Valid())
}

func TestUpdateClassifiesByMembership(t *testing.T) {
	is := is.New(t)
	secret := word.MustParse("CRANE")
	k := New().Update(secret, word.MustParse("BROWN"))

	is.Equal(k.Good.String(), "NR")
	is.Equal(k.Bad.String(), "BOW")
	is.Equal(k.Unknown.Len(), 21)
	is.True(!k.Unknown.Has('R'))
	is.True(k.Unknown.Has('C'))
	is.True(k.Valid())
}

func TestUpdateDoesNotMutateReceiver(t *testing.T) {
	is := is.New(t)
	before := New()
	after := before.Update(word.MustParse("CRANE"), word.MustParse("CRANE"))
	is.Equal(before, New())
	is.Equal(after.Good.String(), "ACENR")
}

func TestUpdateIsIdempotent(t *testing.T) {
	is := is.New(t)
	secret := word.MustParse("DRAKE")
	guess := word.MustParse("EERIE")

	once := New().Update(secret, guess)
	twice := once.Update(secret, guess)
	is.Equal(once, twice)
	is.True(twice.Good.Has('E'))
	is.True(twice.Good.Has('R'))
	is.True(twice.Bad.Has('I'))
}

func TestDuplicateLettersCountOnce(t *testing.T) {
	is := is.New(t)
	k := New().Update(word.MustParse("SISSY"), word.MustParse("SASSY"))
	is.Equal(k.Good.String(), "SY")
	is.Equal(k.Bad.String(), "A")
	is.Equal(k.Good.Len()+k.Bad.Len()+k.Unknown.Len(), 26)
}

func TestPartitionHoldsAcrossGuesses(t *testing.T) {
	is := is.New(t)
	secret := word.MustParse("QUIET")
	k := New()
	for _, g := range []string{"ADIEU", "CRANE", "STOMP", "QUIET", "ADIEU", "FJORD", "WHELK", "BYGLY"} {
		prevGood, prevBad := k.Good, k.Bad
		k = k.Update(secret, word.MustParse(g))

		is.True(k.Valid())
		is.Equal(k.Good.Len()+k.Bad.Len()+k.Unknown.Len(), 26)
		is.Equal(k.Good.Intersect(k.Bad), LetterSet(0))
		// sets only grow
		is.Equal(k.Good.Intersect(prevGood), prevGood)
		is.Equal(k.Bad.Intersect(prevBad), prevBad)
	}
}

func TestLetterSet(t *testing.T) {
	is := is.New(t)
	s := SetOf('Z', 'A', 'M', 'A', '1')
	is.Equal(s.String(), "AMZ")
	is.Equal(s.Len(), 3)
	is.True(s.Has('M'))
	is.True(!s.Has('1'))
	is.Equal(s.Remove('M').String(), "AZ")
	is.Equal(s.Add('B').String(), "ABMZ")
	is.Equal(All.Len(), 26)
}

func TestJSON(t *testing.T) {
	is := is.New(t)
	k := New().Update(word.MustParse("CRANE"), word.MustParse("BROWN"))
	out, err := json.Marshal(k)
	is.NoErr(err)
	is.Equal(string(out), `{"good":"NR","bad":"BOW","unknown":"ACDEFGHIJKLMPQSTUVXYZ"}`)

	var back Knowledge
	is.NoErr(json.Unmarshal(out, &back))
	is.Equal(back, k)
}

func TestLetterSetUnmarshalText(t *testing.T) {
	is := is.New(t)
	var s LetterSet
	is.NoErr(s.UnmarshalText([]byte("nra")))
	is.Equal(s.String(), "ANR")

	is.True(s.UnmarshalText([]byte("A1B")) != nil)
	is.Equal(s.String(), "ANR") // untouched on error

	var k Knowledge
	is.True(json.Unmarshal([]byte(`{"good":"N R"}`), &k) != nil)
}
