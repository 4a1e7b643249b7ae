package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lyricflow/internal/domain"
	"github.com/heartmarshall/lyricflow/internal/lrc"
)

// Scorer rates the cleaned text of a song, e.g. a sentiment polarity in [-1, 1].
type Scorer interface {
	Score(ctx context.Context, text string) (float64, error)
}

// Warning is a recoverable problem met during a run. The run goes on without
// the failed source.
type Warning struct {
	Source string
	Err    error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %v", w.Source, w.Err)
}

// SongResult describes how one lyric file went through the pipeline.
type SongResult struct {
	Song  domain.SongID
	Path  string
	Stats lrc.Stats
	// Metadata holds the ID tags of the file, e.g. "ar" and "ti".
	Metadata map[string]string
	// CleanText is the song's tokens joined by single spaces.
	CleanText string
	// Score is nil when no Scorer is configured or scoring failed.
	Score *float64
}

// Result is everything one run produced.
type Result struct {
	RunID     uuid.UUID
	Stopwords int
	Songs     []SongResult
	Tables    []domain.SongTable
	Global    domain.WordCount
	// Words lists the words flows were built for: the globally most frequent
	// ones in "common" mode, the normalized configured list in "words" mode.
	Words    []string
	Flows    []domain.FlowEntry
	Warnings []Warning
	Duration time.Duration
}

// HasWarnings reports whether any source failed during the run.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
