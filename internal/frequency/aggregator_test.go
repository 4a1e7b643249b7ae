package frequency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/lyricflow/internal/domain"
)

var (
	songA = domain.NewSongID("Artist - A")
	songB = domain.NewSongID("Artist - B")
	songC = domain.NewSongID("C")
)

func TestAggregate_PerSongAndGlobal(t *testing.T) {
	t.Parallel()

	agg := New()
	agg.Aggregate(songA, []string{"hello", "world", "hello"})
	agg.Aggregate(songB, []string{"hello", "again"})

	a, ok := agg.Song(songA.Label)
	require.True(t, ok)
	assert.Equal(t, domain.WordCount{"hello": 2, "world": 1}, a.Counts)
	assert.Equal(t, []string{"hello", "world", "hello"}, a.Tokens)
	assert.Equal(t, map[string]int{"hello": 5, "world": 5}, a.WordLengths)
	assert.Equal(t, songA, a.Song)

	assert.Equal(t, domain.WordCount{"hello": 3, "world": 1, "again": 1}, agg.Global())
	assert.Equal(t, []string{songA.Label, songB.Label}, agg.Songs())
}

func TestAggregate_GlobalEqualsSumOfSongs(t *testing.T) {
	t.Parallel()

	agg := New()
	agg.Aggregate(songA, []string{"x", "y", "y"})
	agg.Aggregate(songB, []string{"y", "z"})
	agg.Aggregate(songC, []string{"x", "x", "z"})

	sum := domain.WordCount{}
	for _, tbl := range agg.Tables() {
		for tok, c := range tbl.Counts {
			sum.Add(tok, c)
		}
	}
	assert.Equal(t, agg.Global(), sum)
}

func TestAggregate_Commutative(t *testing.T) {
	t.Parallel()

	inputs := map[domain.SongID][]string{
		songA: {"love", "me", "do"},
		songB: {"love", "love", "you"},
		songC: {"do", "you", "love", "me"},
	}

	forward := New()
	for _, s := range []domain.SongID{songA, songB, songC} {
		forward.Aggregate(s, inputs[s])
	}
	backward := New()
	for _, s := range []domain.SongID{songC, songB, songA} {
		backward.Aggregate(s, inputs[s])
	}

	assert.Equal(t, forward.Global(), backward.Global())
	for _, s := range []domain.SongID{songA, songB, songC} {
		f, _ := forward.Song(s.Label)
		b, _ := backward.Song(s.Label)
		assert.Equal(t, f.Counts, b.Counts)
	}
	assert.Equal(t, []string{songC.Label, songB.Label, songA.Label}, backward.Songs())
}

func TestAggregate_TwiceDoublesCounts(t *testing.T) {
	t.Parallel()

	agg := New()
	agg.Aggregate(songA, []string{"hey", "jude"})
	agg.Aggregate(songA, []string{"hey", "jude"})

	a, _ := agg.Song(songA.Label)
	assert.Equal(t, domain.WordCount{"hey": 2, "jude": 2}, a.Counts)
	assert.Equal(t, domain.WordCount{"hey": 2, "jude": 2}, agg.Global())
	assert.Equal(t, []string{songA.Label}, agg.Songs(), "a song is listed once")
}

func TestAggregate_EmptyTokensRegistersSong(t *testing.T) {
	t.Parallel()

	agg := New()
	agg.Aggregate(songA, nil)
	agg.Aggregate(songB, []string{""})

	tables := agg.Tables()
	require.Len(t, tables, 2)
	assert.Empty(t, tables[0].Counts)
	assert.Empty(t, tables[1].Counts)
	assert.Empty(t, agg.Global())
}

func TestAggregator_ReturnsCopies(t *testing.T) {
	t.Parallel()

	agg := New()
	agg.Aggregate(songA, []string{"one"})

	g := agg.Global()
	g["one"] = 100
	tbl, _ := agg.Song(songA.Label)
	tbl.Counts["one"] = 100
	tbl.Tokens[0] = "changed"

	assert.Equal(t, domain.WordCount{"one": 1}, agg.Global())
	fresh, _ := agg.Song(songA.Label)
	assert.Equal(t, domain.WordCount{"one": 1}, fresh.Counts)
	assert.Equal(t, []string{"one"}, fresh.Tokens)
}

func TestAggregator_UnknownSong(t *testing.T) {
	t.Parallel()

	_, ok := New().Song("nope")
	assert.False(t, ok)
}

func TestAggregator_FreshInstancesAreIsolated(t *testing.T) {
	t.Parallel()

	first := New()
	first.Aggregate(songA, []string{"a"})
	second := New()

	assert.Empty(t, second.Global())
	assert.Empty(t, second.Songs())
}
