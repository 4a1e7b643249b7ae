package domain

import "testing"

func TestNormalizeWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  the  ", want: "the"},
		{name: "lowercase", input: "HeLLo", want: "hello"},
		{name: "diacritics preserved", input: "Café", want: "café"},
		{name: "decomposed composed to NFC", input: "Cafe\u0301", want: "caf\u00e9"},
		{name: "ascii apostrophe kept", input: "Don't", want: "don't"},
		{name: "curly apostrophe folded", input: "Don’t", want: "don't"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "tabs and newline", input: "\tyou\r\n", want: "you"},
		{name: "cyrillic", input: "ЛЮБОВЬ", want: "любовь"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeWord(tt.input); got != tt.want {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLowerText_KeepsWhitespace(t *testing.T) {
	t.Parallel()

	got := LowerText("Hello  World\nAgain")
	want := "hello  world\nagain"
	if got != want {
		t.Errorf("LowerText() = %q, want %q", got, want)
	}
}
