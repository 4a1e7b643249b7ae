package domain

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp is a parsed [mm:ss.xx] tag. Fraction keeps its digit count so the
// original tag text can be rebuilt exactly.
type Timestamp struct {
	Minutes        int
	Seconds        int
	Fraction       int
	FractionDigits int // 0 when the tag had no fractional part
}

// Duration returns the playback offset the tag points at.
func (t Timestamp) Duration() time.Duration {
	d := time.Duration(t.Minutes)*time.Minute + time.Duration(t.Seconds)*time.Second
	if t.FractionDigits > 0 {
		unit := time.Second
		for range t.FractionDigits {
			unit /= 10
		}
		d += time.Duration(t.Fraction) * unit
	}
	return d
}

// String renders the tag in LRC form, e.g. "[01:02.50]".
func (t Timestamp) String() string {
	if t.FractionDigits == 0 {
		return fmt.Sprintf("[%02d:%02d]", t.Minutes, t.Seconds)
	}
	return fmt.Sprintf("[%02d:%02d.%0*d]", t.Minutes, t.Seconds, t.FractionDigits, t.Fraction)
}

// LyricLine is one lyric line. Timestamp is nil for untimed or metadata lines.
type LyricLine struct {
	Timestamp *Timestamp
	Text      string
}

// Timed reports whether the line carries a timestamp.
func (l LyricLine) Timed() bool {
	return l.Timestamp != nil
}

// SongID identifies a song by the name of the file it was read from.
type SongID struct {
	Label  string // file name without extension; the table key
	Artist string
	Title  string
}

// SongDelimiter separates artist from title in a lyric file name.
const SongDelimiter = " - "

// NewSongID splits label into artist and title on the first SongDelimiter.
// Without a delimiter the artist is empty and the title is the whole label.
func NewSongID(label string) SongID {
	label = strings.TrimSpace(label)
	artist, title, found := strings.Cut(label, SongDelimiter)
	if !found {
		return SongID{Label: label, Title: label}
	}
	return SongID{
		Label:  label,
		Artist: strings.TrimSpace(artist),
		Title:  strings.TrimSpace(title),
	}
}

// LyricDocument is the parsed content of one lyric file. Lines keep file order,
// which is not guaranteed to be temporal order.
type LyricDocument struct {
	Song  SongID
	Lines []LyricLine
	// Metadata holds ID tags such as [ar:Artist] keyed by lower-cased tag name.
	Metadata map[string]string
}

// Text joins the line texts with newlines.
func (d LyricDocument) Text() string {
	if len(d.Lines) == 0 {
		return ""
	}
	var b strings.Builder
	for i, l := range d.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.Text)
	}
	return b.String()
}

// TimedLines counts lines that carry a timestamp.
func (d LyricDocument) TimedLines() int {
	n := 0
	for _, l := range d.Lines {
		if l.Timed() {
			n++
		}
	}
	return n
}
