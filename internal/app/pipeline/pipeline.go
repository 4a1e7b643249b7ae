// Package pipeline runs one lyric analysis: stopwords and lyric files in,
// word-count tables and song -> word flows out.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lyricflow/internal/config"
	"github.com/heartmarshall/lyricflow/internal/domain"
	"github.com/heartmarshall/lyricflow/internal/flow"
	"github.com/heartmarshall/lyricflow/internal/frequency"
	"github.com/heartmarshall/lyricflow/internal/lrc"
	"github.com/heartmarshall/lyricflow/internal/stopwords"
	"github.com/heartmarshall/lyricflow/internal/tokenize"
	"github.com/heartmarshall/lyricflow/pkg/ctxutil"
)

// Pipeline wires the lyric components together for a single run.
type Pipeline struct {
	log    *slog.Logger
	cfg    config.PipelineConfig
	scorer Scorer
}

// NewPipeline creates a new Pipeline. scorer may be nil.
func NewPipeline(log *slog.Logger, cfg config.PipelineConfig, scorer Scorer) *Pipeline {
	return &Pipeline{
		log:    log,
		cfg:    cfg,
		scorer: scorer,
	}
}

// loadedSong is the outcome of reading and tokenizing one file. Exactly one of
// doc or err is meaningful.
type loadedSong struct {
	doc      domain.LyricDocument
	stats    lrc.Stats
	tokens   []string
	score    *float64
	err      error
	scoreErr error
}

// Run executes the pipeline. Unreadable stopword or lyric files become
// warnings on the result; only configuration errors and cancellation are
// returned as errors.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	if p.cfg.TopN < 1 {
		return nil, domain.NewValidationError("top_n", fmt.Sprintf("must be >= 1, got %d", p.cfg.TopN))
	}

	result := &Result{RunID: uuid.New()}
	ctx = ctxutil.WithRunID(ctx, result.RunID)
	log := ctxutil.Logger(ctx, p.log)

	// Step 1: Stopwords.
	stop := p.loadStopwords(log, result)

	// Step 2: Song files and their identifiers.
	paths, err := listSongs(p.cfg.SongsDir, p.cfg.SongExt)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, domain.NewValidationError("songs_dir",
			fmt.Sprintf("no %s files in %s", p.cfg.SongExt, p.cfg.SongsDir))
	}
	ids, dups := assignSongIDs(paths)
	for _, d := range dups {
		log.Warn("duplicate song label", slog.String("path", d.Source), slog.String("error", d.Err.Error()))
	}
	result.Warnings = append(result.Warnings, dups...)
	log.Info("songs found", slog.Int("songs", len(paths)), slog.String("dir", p.cfg.SongsDir))

	// Step 3: Read, parse, tokenize and score songs.
	loaded, err := p.loadSongs(ctx, stop, paths, ids)
	if err != nil {
		return nil, err
	}

	// Step 4: Aggregate in file order.
	agg := frequency.New()
	for i, ls := range loaded {
		if ls.err != nil {
			log.Warn("song skipped", slog.String("path", paths[i]), slog.String("error", ls.err.Error()))
			result.Warnings = append(result.Warnings, Warning{Source: paths[i], Err: ls.err})
			continue
		}
		if ls.scoreErr != nil {
			log.Warn("song not scored", slog.String("path", paths[i]), slog.String("error", ls.scoreErr.Error()))
			result.Warnings = append(result.Warnings, Warning{Source: paths[i], Err: ls.scoreErr})
		}

		agg.Aggregate(ls.doc.Song, ls.tokens)
		result.Songs = append(result.Songs, SongResult{
			Song:      ls.doc.Song,
			Path:      paths[i],
			Stats:     ls.stats,
			Metadata:  ls.doc.Metadata,
			CleanText: strings.Join(ls.tokens, " "),
			Score:     ls.score,
		})

		log.Debug("song aggregated",
			slog.String("song", ls.doc.Song.Label),
			slog.Int("lines", len(ls.doc.Lines)),
			slog.Int("timed_lines", ls.stats.TimedLines),
			slog.Int("malformed_tags", ls.stats.MalformedTags),
			slog.Int("tokens", len(ls.tokens)),
		)
	}

	result.Tables = agg.Tables()
	result.Global = agg.Global()

	// Step 5: Flows.
	if err := p.buildFlows(result); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	log.Info("pipeline completed",
		slog.Int("songs", len(result.Songs)),
		slog.Int("distinct_words", len(result.Global)),
		slog.Int("flows", len(result.Flows)),
		slog.Int("warnings", len(result.Warnings)),
		slog.Duration("duration", result.Duration),
	)
	return result, nil
}

func (p *Pipeline) loadStopwords(log *slog.Logger, result *Result) *stopwords.Set {
	extra := make([]stopwords.Source, 0, len(p.cfg.StopwordFiles))
	for _, path := range p.cfg.StopwordFiles {
		extra = append(extra, stopwords.FileSource(path))
	}

	var (
		set      *stopwords.Set
		failures []stopwords.SourceFailure
	)
	if p.cfg.StopwordsDir != "" {
		set, failures = stopwords.LoadDir(p.cfg.StopwordsDir, p.cfg.StopwordExt, extra...)
	} else {
		set, failures = stopwords.Load(extra...)
	}

	for _, f := range failures {
		log.Warn("stopword source skipped", slog.String("source", f.Source), slog.String("error", f.Err.Error()))
		result.Warnings = append(result.Warnings, Warning{Source: f.Source, Err: f.Err})
	}
	result.Stopwords = set.Len()
	log.Info("stopwords loaded", slog.Int("words", set.Len()), slog.Int("failed_sources", len(failures)))
	return set
}

// loadSongs processes songs with up to cfg.Workers goroutines. Results land in
// the slot of their input index, so output order never depends on scheduling.
func (p *Pipeline) loadSongs(ctx context.Context, stop *stopwords.Set, paths []string, ids []domain.SongID) ([]loadedSong, error) {
	tok := tokenize.New(stop)
	loaded := make([]loadedSong, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.cfg.Workers, 1))

	for i := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			loaded[i] = p.loadSong(ctxutil.WithSong(gctx, ids[i].Label), tok, paths[i], ids[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load songs: %w", err)
	}
	return loaded, nil
}

func (p *Pipeline) loadSong(ctx context.Context, tok *tokenize.Tokenizer, path string, id domain.SongID) loadedSong {
	doc, stats, err := lrc.ParseFile(path)
	if err != nil {
		return loadedSong{err: err}
	}
	doc.Song = id

	ls := loadedSong{
		doc:    doc,
		stats:  stats,
		tokens: tok.Tokenize(doc.Text()),
	}

	if p.scorer != nil {
		score, err := p.scorer.Score(ctx, strings.Join(ls.tokens, " "))
		if err != nil {
			ls.scoreErr = fmt.Errorf("score: %w", err)
		} else {
			ls.score = &score
		}
	}

	ctxutil.Logger(ctx, p.log).Debug("song parsed",
		slog.Int("total_lines", stats.TotalLines),
		slog.Int("metadata_tags", stats.MetadataTags),
	)
	return ls
}

func (p *Pipeline) buildFlows(result *Result) error {
	switch p.cfg.FlowMode {
	case domain.FlowModeCommon:
		words, err := flow.CommonWords(result.Global, p.cfg.TopN)
		if err != nil {
			return fmt.Errorf("common words: %w", err)
		}
		result.Words = words
		if len(words) == 0 {
			return nil
		}
		flows, err := flow.BuildForWords(result.Tables, words)
		if err != nil {
			return fmt.Errorf("build flows: %w", err)
		}
		result.Flows = flows
	case domain.FlowModeWords:
		result.Words = normalizeWords(p.cfg.FlowWords)
		flows, err := flow.BuildForWords(result.Tables, result.Words)
		if err != nil {
			return fmt.Errorf("build flows: %w", err)
		}
		result.Flows = flows
	default:
		flows, err := flow.Build(result.Tables, p.cfg.TopN)
		if err != nil {
			return fmt.Errorf("build flows: %w", err)
		}
		result.Flows = flows
	}
	return nil
}

// normalizeWords applies domain.NormalizeWord to words, dropping blanks and
// repeats while keeping the first-seen order.
func normalizeWords(words []string) []string {
	var out []string
	for _, w := range words {
		if w = domain.NormalizeWord(w); w != "" && !slices.Contains(out, w) {
			out = append(out, w)
		}
	}
	return out
}
