package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// apostrophes folds typographic apostrophes into the ASCII one so that
// "don’t" in a lyric matches "don't" in a stopword list.
var apostrophes = strings.NewReplacer("’", "'", "‘", "'", "ʼ", "'")

// LowerText lower-cases text after NFC composition and apostrophe folding.
// It is the casing rule shared by stopword loading and tokenization.
func LowerText(text string) string {
	if text == "" {
		return ""
	}
	text = norm.NFC.String(text)
	text = apostrophes.Replace(text)
	return cases.Lower(language.Und).String(text)
}

// NormalizeWord prepares a single word for set membership and counting:
//   - trims leading/trailing whitespace
//   - applies LowerText
//
// Internal punctuation is preserved; stripping is the tokenizer's job.
func NormalizeWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	return LowerText(word)
}
