package domain

import (
	"cmp"
	"slices"
)

// WordCount maps a token to its number of occurrences. Stored counts are >= 1.
type WordCount map[string]int

// Add increments the count of token by n. Non-positive n is ignored.
func (w WordCount) Add(token string, n int) {
	if n <= 0 {
		return
	}
	w[token] += n
}

// Total returns the sum of all counts.
func (w WordCount) Total() int {
	total := 0
	for _, c := range w {
		total += c
	}
	return total
}

// Clone returns an independent copy. A nil WordCount clones to an empty one.
func (w WordCount) Clone() WordCount {
	out := make(WordCount, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// WordFrequency is one row of a ranked WordCount.
type WordFrequency struct {
	Token string `json:"token" yaml:"token"`
	Count int    `json:"count" yaml:"count"`
}

// Ranked returns all entries ordered by count descending, ties broken by
// ascending token.
func (w WordCount) Ranked() []WordFrequency {
	out := make([]WordFrequency, 0, len(w))
	for token, count := range w {
		out = append(out, WordFrequency{Token: token, Count: count})
	}
	slices.SortFunc(out, CompareFrequency)
	return out
}

// CompareFrequency orders by count descending, then token ascending.
func CompareFrequency(a, b WordFrequency) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return cmp.Compare(a.Token, b.Token)
}

// SongTable is the aggregated view of one song.
type SongTable struct {
	Song   SongID
	Counts WordCount
	// Tokens is the cleaned token sequence before counting, in text order.
	Tokens []string
	// WordLengths maps each distinct token to its length in runes.
	WordLengths map[string]int
}

// FlowEntry is one song -> word link of a Sankey diagram.
type FlowEntry struct {
	Song  string `json:"source" yaml:"source"`
	Token string `json:"target" yaml:"target"`
	Count int    `json:"value"  yaml:"value"`
}
