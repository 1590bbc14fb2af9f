package scoring

import "strings"

// Glyphs maps each verdict to a single display character.
// Presentation layers can supply their own set.
type Glyphs struct {
	Placed  rune
	Present rune
	Absent  rune
}

// DefaultGlyphs: X placed correctly, O present elsewhere, _ not present.
var DefaultGlyphs = Glyphs{Placed: 'X', Present: 'O', Absent: '_'}

// Glyph returns the character for v.
func (g Glyphs) Glyph(v Verdict) rune {
	switch v {
	case PlacedCorrectly:
		return g.Placed
	case PresentElsewhere:
		return g.Present
	default:
		return g.Absent
	}
}

// Render concatenates the glyph of every verdict in position order.
func (g Glyphs) Render(s WordScore) string {
	var b strings.Builder
	for _, v := range s {
		b.WriteRune(g.Glyph(v))
	}
	return b.String()
}
