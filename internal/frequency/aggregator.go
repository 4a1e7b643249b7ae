// Package frequency accumulates per-song and global word counts for one run.
package frequency

import (
	"slices"
	"unicode/utf8"

	"github.com/heartmarshall/lyricflow/internal/domain"
)

type songState struct {
	song   domain.SongID
	counts domain.WordCount
	tokens []string
}

// Aggregator owns the word-count tables of a single run. Create a fresh one per
// run; it is not safe for concurrent use.
//
// Aggregating the same song twice adds its tokens twice. Making sure each song
// is aggregated once per run is the caller's job.
type Aggregator struct {
	order  []string
	songs  map[string]*songState
	global domain.WordCount
}

// New creates an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{
		songs:  make(map[string]*songState),
		global: make(domain.WordCount),
	}
}

// Aggregate adds one occurrence of every token to the song's table and to the
// global table. Songs are keyed by SongID.Label.
func (a *Aggregator) Aggregate(song domain.SongID, tokens []string) {
	st, ok := a.songs[song.Label]
	if !ok {
		st = &songState{song: song, counts: make(domain.WordCount)}
		a.songs[song.Label] = st
		a.order = append(a.order, song.Label)
	}

	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		st.counts.Add(tok, 1)
		a.global.Add(tok, 1)
		st.tokens = append(st.tokens, tok)
	}
}

// Global returns a copy of the cross-song table.
func (a *Aggregator) Global() domain.WordCount {
	return a.global.Clone()
}

// Songs returns song labels in the order they were first aggregated.
func (a *Aggregator) Songs() []string {
	return slices.Clone(a.order)
}

// Song returns a copy of one song's table.
func (a *Aggregator) Song(label string) (domain.SongTable, bool) {
	st, ok := a.songs[label]
	if !ok {
		return domain.SongTable{}, false
	}
	return st.table(), true
}

// Tables returns copies of all song tables in first-aggregated order.
func (a *Aggregator) Tables() []domain.SongTable {
	out := make([]domain.SongTable, 0, len(a.order))
	for _, label := range a.order {
		out = append(out, a.songs[label].table())
	}
	return out
}

func (st *songState) table() domain.SongTable {
	lengths := make(map[string]int, len(st.counts))
	for tok := range st.counts {
		lengths[tok] = utf8.RuneCountInString(tok)
	}
	return domain.SongTable{
		Song:        st.song,
		Counts:      st.counts.Clone(),
		Tokens:      slices.Clone(st.tokens),
		WordLengths: lengths,
	}
}
