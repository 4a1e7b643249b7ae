package domain

import "strings"

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SplitLines normalizes "\r\n" and bare "\r" to "\n", drops a leading BOM and
// invalid UTF-8, and splits into physical lines. A trailing newline does not
// add a line; empty text yields no lines.
func SplitLines(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ToValidUTF8(text, "")
	text = lineBreaks.Replace(text)
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
