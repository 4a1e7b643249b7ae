package domain

import (
	"slices"
	"testing"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: nil},
		{name: "only newline", text: "\n", want: nil},
		{name: "single line", text: "hello", want: []string{"hello"}},
		{name: "trailing newline", text: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", text: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "bare cr", text: "a\rb\rc", want: []string{"a", "b", "c"}},
		{name: "mixed", text: "a\r\nb\rc\nd", want: []string{"a", "b", "c", "d"}},
		{name: "blank lines kept", text: "a\n\nb", want: []string{"a", "", "b"}},
		{name: "leading bom", text: "\ufeffa\nb", want: []string{"a", "b"}},
		{name: "invalid utf-8 dropped", text: "caf\xffe\n", want: []string{"cafe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SplitLines(tt.text); !slices.Equal(got, tt.want) {
				t.Errorf("SplitLines(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
