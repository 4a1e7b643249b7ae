// Package lrc parses LRC timed-lyric files into domain lyric documents.
// Pure function: text in, domain structs out. Malformed input degrades the
// affected line only; parsing itself never fails.
package lrc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/lyricflow/internal/domain"
)

// timestampChars are the characters that may follow an unterminated "[" and
// are discarded together with it.
const timestampChars = "0123456789:."

var (
	// [mm:ss], [mm:ss.x], [mm:ss.xx], [mm:ss.xxx]; some tools write ':' before the fraction.
	timestampRe = regexp.MustCompile(`^\[(\d+):(\d{1,2})(?:[.:](\d{1,3}))?\]$`)
	// ID tags: [ar:Artist], [ti:Title], [offset:+200] ... Other name:value
	// groups such as [mm:ss] or [Chorus: x] are malformed.
	idTagRe = regexp.MustCompile(`^\[(?i:(ar|ti|al|au|by|re|ve|length|offset|#)):(.*)\]$`)
)

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines    int // physical lines read
	TimedLines    int // LyricLines emitted with a timestamp
	UntimedLines  int // LyricLines emitted without a timestamp
	EmptyLines    int // physical lines dropped because no text remained
	MalformedTags int
	MetadataTags  int
}

// Parse converts one LRC document into a LyricDocument. A physical line with
// several timestamp tags yields one LyricLine per tag, all sharing the text.
// Lines without a valid tag keep their text as an untimed line.
func Parse(song domain.SongID, text string) (domain.LyricDocument, Stats) {
	doc := domain.LyricDocument{Song: song}
	var stats Stats

	for _, raw := range domain.SplitLines(text) {
		stats.TotalLines++

		pl := parseLine(raw)
		stats.MalformedTags += pl.malformed
		for k, v := range pl.metadata {
			if doc.Metadata == nil {
				doc.Metadata = make(map[string]string)
			}
			doc.Metadata[k] = v
			stats.MetadataTags++
		}

		if pl.text == "" {
			stats.EmptyLines++
			continue
		}

		if len(pl.stamps) == 0 {
			doc.Lines = append(doc.Lines, domain.LyricLine{Text: pl.text})
			stats.UntimedLines++
			continue
		}

		for i := range pl.stamps {
			ts := pl.stamps[i]
			doc.Lines = append(doc.Lines, domain.LyricLine{Timestamp: &ts, Text: pl.text})
			stats.TimedLines++
		}
	}

	return doc, stats
}

// ParseFile reads the file at path and parses it. The song identifier is
// derived from the file name. The only possible error is a read failure,
// which wraps domain.ErrSourceRead.
func ParseFile(path string) (domain.LyricDocument, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.LyricDocument{}, Stats{}, domain.NewSourceError(path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return domain.LyricDocument{}, Stats{}, domain.NewSourceError(path, err)
	}

	doc, stats := Parse(SongIDFromPath(path), string(data))
	return doc, stats, nil
}

// SongIDFromPath derives a song identifier from a lyric file name:
// "songs/Adele - Hello.lrc" -> {Label: "Adele - Hello", Artist: "Adele", Title: "Hello"}.
func SongIDFromPath(path string) domain.SongID {
	base := filepath.Base(path)
	return domain.NewSongID(strings.TrimSuffix(base, filepath.Ext(base)))
}

// ParseTimestamp parses a single "[mm:ss.xx]" tag.
func ParseTimestamp(tag string) (domain.Timestamp, error) {
	m := timestampRe.FindStringSubmatch(tag)
	if m == nil {
		return domain.Timestamp{}, fmt.Errorf("%w: %q", domain.ErrMalformedTimestamp, tag)
	}

	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		return domain.Timestamp{}, fmt.Errorf("%w: minutes in %q: %v", domain.ErrMalformedTimestamp, tag, err)
	}
	seconds, _ := strconv.Atoi(m[2])
	if seconds >= 60 {
		return domain.Timestamp{}, fmt.Errorf("%w: seconds out of range in %q", domain.ErrMalformedTimestamp, tag)
	}

	ts := domain.Timestamp{Minutes: minutes, Seconds: seconds}
	if m[3] != "" {
		ts.Fraction, _ = strconv.Atoi(m[3])
		ts.FractionDigits = len(m[3])
	}
	return ts, nil
}

// parsedLine is the outcome of scanning one physical line.
type parsedLine struct {
	stamps    []domain.Timestamp
	metadata  map[string]string
	malformed int
	text      string
}

// scanState is the state of the leading-tag scanner.
type scanState int

const (
	stateTag  scanState = iota // at the start of a possible tag
	stateText                  // tags are over; the rest is lyric text
)

// parseLine walks the leading bracket tags of a line. Each complete tag is
// either a timestamp, an ID tag, or malformed and discarded. An unterminated
// "[" drops itself and any timestamp characters after it and ends the tags.
// A tag missing its "[" ("00:01.00]") is discarded through its "]".
func parseLine(line string) parsedLine {
	var pl parsedLine
	rest := line

	for state := stateTag; state == stateTag; {
		rest = strings.TrimLeft(rest, " \t")
		if !strings.HasPrefix(rest, "[") {
			if n := openlessTagLen(rest); n > 0 {
				pl.malformed++
				rest = rest[n:]
				continue
			}
			state = stateText
			continue
		}

		end := strings.IndexByte(rest, ']')
		if end == -1 {
			pl.malformed++
			rest = strings.TrimLeft(rest[1:], timestampChars)
			state = stateText
			continue
		}

		tag := rest[:end+1]
		rest = rest[end+1:]

		if ts, err := ParseTimestamp(tag); err == nil {
			pl.stamps = append(pl.stamps, ts)
			continue
		}
		if m := idTagRe.FindStringSubmatch(tag); m != nil {
			if pl.metadata == nil {
				pl.metadata = make(map[string]string, 1)
			}
			pl.metadata[strings.ToLower(m[1])] = strings.TrimSpace(m[2])
			continue
		}
		pl.malformed++
	}

	pl.text = strings.TrimSpace(rest)
	return pl
}

// openlessTagLen returns the length of a leading "mm:ss.xx]" run, including
// the "]", or 0. The run must hold a ':' so lyrics like "99] bottles" survive.
func openlessTagLen(s string) int {
	n := len(s) - len(strings.TrimLeft(s, timestampChars))
	if n == 0 || n == len(s) || s[n] != ']' || !strings.Contains(s[:n], ":") {
		return 0
	}
	return n + 1
}
