package domain

import (
	"testing"
	"time"
)

func TestTimestamp_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ts   Timestamp
		want string
	}{
		{"centiseconds", Timestamp{Minutes: 1, Seconds: 2, Fraction: 50, FractionDigits: 2}, "[01:02.50]"},
		{"leading zero fraction", Timestamp{Minutes: 0, Seconds: 5, Fraction: 5, FractionDigits: 2}, "[00:05.05]"},
		{"milliseconds", Timestamp{Minutes: 3, Seconds: 59, Fraction: 7, FractionDigits: 3}, "[03:59.007]"},
		{"no fraction", Timestamp{Minutes: 12, Seconds: 0}, "[12:00]"},
		{"three digit minutes", Timestamp{Minutes: 100, Seconds: 1, Fraction: 1, FractionDigits: 1}, "[100:01.1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.ts.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTimestamp_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ts   Timestamp
		want time.Duration
	}{
		{"zero", Timestamp{}, 0},
		{"centiseconds", Timestamp{Minutes: 1, Seconds: 2, Fraction: 50, FractionDigits: 2}, 62*time.Second + 500*time.Millisecond},
		{"milliseconds", Timestamp{Seconds: 1, Fraction: 7, FractionDigits: 3}, time.Second + 7*time.Millisecond},
		{"tenths", Timestamp{Seconds: 1, Fraction: 3, FractionDigits: 1}, time.Second + 300*time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.ts.Duration(); got != tt.want {
				t.Errorf("Duration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewSongID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label      string
		wantArtist string
		wantTitle  string
	}{
		{"Adele - Hello", "Adele", "Hello"},
		{"Hello", "", "Hello"},
		{"AC/DC - Back In Black - Live", "AC/DC", "Back In Black - Live"},
		{"  Queen -  Bicycle Race ", "Queen", "Bicycle Race"},
		{"Jay-Z", "", "Jay-Z"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			got := NewSongID(tt.label)
			if got.Artist != tt.wantArtist {
				t.Errorf("Artist = %q, want %q", got.Artist, tt.wantArtist)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestLyricDocument_Text(t *testing.T) {
	t.Parallel()

	ts := &Timestamp{Seconds: 1}
	doc := LyricDocument{Lines: []LyricLine{
		{Timestamp: ts, Text: "Hello world"},
		{Text: "No timestamp line"},
	}}

	if got := doc.Text(); got != "Hello world\nNo timestamp line" {
		t.Errorf("Text() = %q", got)
	}
	if got := doc.TimedLines(); got != 1 {
		t.Errorf("TimedLines() = %d, want 1", got)
	}
	if got := (LyricDocument{}).Text(); got != "" {
		t.Errorf("empty document Text() = %q, want empty", got)
	}
}
