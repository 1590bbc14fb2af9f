package assets

import (
	"bufio"
	"embed"
	"io"
	"strings"
)

//go:embed answers.txt
var FS embed.FS

// ReadLines returns the non-blank, non-comment lines of r, trimmed.
// Case is left untouched; callers normalize through word.Parse.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// AnswersList returns the embedded default answer list.
func AnswersList() ([]string, error) {
	f, err := FS.Open("answers.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}
