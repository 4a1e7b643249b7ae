// Package tokenize turns lyric text into normalized word tokens.
package tokenize

import (
	"strings"
	"unicode"

	"github.com/heartmarshall/lyricflow/internal/domain"
	"github.com/heartmarshall/lyricflow/internal/stopwords"
)

// Tokenizer cleans text and filters stopwords. It holds no mutable state and
// is safe for concurrent use.
type Tokenizer struct {
	stop *stopwords.Set
}

// New creates a Tokenizer filtering against stop. A nil set filters nothing.
func New(stop *stopwords.Set) *Tokenizer {
	return &Tokenizer{stop: stop}
}

// Tokenize lower-cases text, deletes every character that is not a letter,
// digit, whitespace or internal apostrophe, splits on whitespace and drops
// stopwords and purely numeric tokens. Order and duplicates are preserved.
func (t *Tokenizer) Tokenize(text string) []string {
	fields := strings.Fields(strip(domain.LowerText(text)))

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == "" || isNumeric(f) {
			continue
		}
		if t.stop.Contains(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// CleanText returns the tokens of text joined by single spaces.
func (t *Tokenizer) CleanText(text string) string {
	return strings.Join(t.Tokenize(text), " ")
}

// strip deletes disallowed runes. An apostrophe survives only between two
// letters or digits, so "don't" stays whole while "'cause" and "singin'" lose
// it. Combining marks survive only when attached to a kept word rune.
func strip(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	inWord := false
	for i, r := range runes {
		switch {
		case isWordRune(r):
			b.WriteRune(r)
			inWord = true
		case unicode.IsMark(r) && inWord:
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
			inWord = false
		case r == '\'' && inWord && i < len(runes)-1 && isWordRune(runes[i+1]):
			b.WriteRune(r)
		default:
			inWord = false
		}
	}
	return b.String()
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
