package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle/internal/word"
)

// Answers is the slice of the word list the daily challenge draws from.
type Answers interface {
	At(i int) word.Word
	Len() int
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % answersLen.
func WordIndex(date time.Time, salt string, answersLen int) int {
	if answersLen <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(answersLen))
}

// Puzzle identifies one day's challenge.
type Puzzle struct {
	Date      string
	WordIndex int
	Answer    word.Word
}

// PuzzleFor returns the challenge for the UTC day containing t.
// The list must not be empty.
func PuzzleFor(t time.Time, salt string, list Answers) Puzzle {
	idx := WordIndex(t, salt, list.Len())
	return Puzzle{
		Date:      DateKey(t),
		WordIndex: idx,
		Answer:    list.At(idx),
	}
}
