// Package flow turns per-song word tables into song -> word flow entries for
// Sankey-style renderers.
package flow

import (
	"fmt"
	"slices"

	"github.com/heartmarshall/lyricflow/internal/domain"
)

// Build selects the topN most frequent tokens of every song. Songs keep the
// order they are supplied in; within a song entries are ordered by count
// descending, then token ascending. A song with fewer distinct tokens than topN
// contributes all of them.
func Build(tables []domain.SongTable, topN int) ([]domain.FlowEntry, error) {
	if topN < 1 {
		return nil, domain.NewValidationError("top_n", fmt.Sprintf("must be >= 1, got %d", topN))
	}

	var out []domain.FlowEntry
	for _, tbl := range tables {
		ranked := tbl.Counts.Ranked()
		if len(ranked) > topN {
			ranked = ranked[:topN]
		}
		out = appendEntries(out, tbl.Song.Label, ranked)
	}
	return out, nil
}

// BuildForWords emits entries only for the given words. A word a song never
// uses produces no entry for that song. Duplicate and differently-cased words
// are merged after normalization.
func BuildForWords(tables []domain.SongTable, words []string) ([]domain.FlowEntry, error) {
	wanted := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = domain.NormalizeWord(w); w != "" {
			wanted[w] = struct{}{}
		}
	}
	if len(wanted) == 0 {
		return nil, domain.NewValidationError("words", "at least one word is required")
	}

	var out []domain.FlowEntry
	for _, tbl := range tables {
		var picked []domain.WordFrequency
		for w := range wanted {
			if c := tbl.Counts[w]; c > 0 {
				picked = append(picked, domain.WordFrequency{Token: w, Count: c})
			}
		}
		slices.SortFunc(picked, domain.CompareFrequency)
		out = appendEntries(out, tbl.Song.Label, picked)
	}
	return out, nil
}

// CommonWords returns the k most frequent tokens of the global table, ranked
// the same way as Build.
func CommonWords(global domain.WordCount, k int) ([]string, error) {
	if k < 1 {
		return nil, domain.NewValidationError("top_n", fmt.Sprintf("must be >= 1, got %d", k))
	}

	ranked := global.Ranked()
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	words := make([]string, len(ranked))
	for i, wf := range ranked {
		words[i] = wf.Token
	}
	return words, nil
}

func appendEntries(out []domain.FlowEntry, song string, ranked []domain.WordFrequency) []domain.FlowEntry {
	for _, wf := range ranked {
		out = append(out, domain.FlowEntry{Song: song, Token: wf.Token, Count: wf.Count})
	}
	return out
}
