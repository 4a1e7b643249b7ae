// Package report serializes a pipeline result for word-cloud, bar-chart and
// Sankey renderers.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/lyricflow/internal/app"
	"github.com/heartmarshall/lyricflow/internal/app/pipeline"
	"github.com/heartmarshall/lyricflow/internal/domain"
)

// Report is the serialized form of a run. Map-valued fields are emitted with
// sorted keys by both encoders.
type Report struct {
	RunID     string                 `json:"run_id"          yaml:"run_id"`
	Version   string                 `json:"version"         yaml:"version"`
	Stopwords int                    `json:"stopwords"       yaml:"stopwords"`
	Totals    Totals                 `json:"totals"          yaml:"totals"`
	Songs     []Song                 `json:"songs"           yaml:"songs"`
	Global    []domain.WordFrequency `json:"global"          yaml:"global"`
	Words     []string               `json:"words,omitempty" yaml:"words,omitempty"`
	Flows     []domain.FlowEntry     `json:"flows"           yaml:"flows"`
	Warnings  []Warning              `json:"warnings"        yaml:"warnings"`
}

// Totals summarizes the global table.
type Totals struct {
	Songs         int `json:"songs"          yaml:"songs"`
	Words         int `json:"words"          yaml:"words"`
	DistinctWords int `json:"distinct_words" yaml:"distinct_words"`
}

// Song is the per-song section of a report.
type Song struct {
	Label       string                 `json:"label"              yaml:"label"`
	Artist      string                 `json:"artist,omitempty"   yaml:"artist,omitempty"`
	Title       string                 `json:"title"              yaml:"title"`
	Path        string                 `json:"path"               yaml:"path"`
	Metadata    map[string]string      `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Lines       Lines                  `json:"lines"              yaml:"lines"`
	Words       []domain.WordFrequency `json:"words"              yaml:"words"`
	WordLengths map[string]int         `json:"word_lengths"       yaml:"word_lengths"`
	CleanText   string                 `json:"clean_text"         yaml:"clean_text"`
	Score       *float64               `json:"score,omitempty"    yaml:"score,omitempty"`
}

// Lines carries the parser counters of one song.
type Lines struct {
	Timed         int `json:"timed"          yaml:"timed"`
	Untimed       int `json:"untimed"        yaml:"untimed"`
	MalformedTags int `json:"malformed_tags" yaml:"malformed_tags"`
}

// Warning is a serialized pipeline.Warning.
type Warning struct {
	Source string `json:"source" yaml:"source"`
	Error  string `json:"error"  yaml:"error"`
}

// New converts a pipeline result into a Report.
func New(res *pipeline.Result) Report {
	rep := Report{
		RunID:     res.RunID.String(),
		Version:   app.Version,
		Stopwords: res.Stopwords,
		Totals: Totals{
			Songs:         len(res.Tables),
			Words:         res.Global.Total(),
			DistinctWords: len(res.Global),
		},
		Songs:    make([]Song, 0, len(res.Songs)),
		Global:   res.Global.Ranked(),
		Words:    res.Words,
		Flows:    res.Flows,
		Warnings: make([]Warning, 0, len(res.Warnings)),
	}
	if rep.Flows == nil {
		rep.Flows = []domain.FlowEntry{}
	}

	tables := make(map[string]domain.SongTable, len(res.Tables))
	for _, tbl := range res.Tables {
		tables[tbl.Song.Label] = tbl
	}

	for _, s := range res.Songs {
		tbl := tables[s.Song.Label]
		rep.Songs = append(rep.Songs, Song{
			Label:    s.Song.Label,
			Artist:   s.Song.Artist,
			Title:    s.Song.Title,
			Path:     s.Path,
			Metadata: s.Metadata,
			Lines: Lines{
				Timed:         s.Stats.TimedLines,
				Untimed:       s.Stats.UntimedLines,
				MalformedTags: s.Stats.MalformedTags,
			},
			Words:       tbl.Counts.Ranked(),
			WordLengths: tbl.WordLengths,
			CleanText:   s.CleanText,
			Score:       s.Score,
		})
	}

	for _, w := range res.Warnings {
		rep.Warnings = append(rep.Warnings, Warning{Source: w.Source, Error: w.Err.Error()})
	}
	return rep
}

// Encode writes the report of res to w in the given format ("json" or "yaml").
func Encode(w io.Writer, format domain.ReportFormat, res *pipeline.Result) error {
	rep := New(res)

	switch format {
	case domain.ReportFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		return nil
	case domain.ReportFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml report: %w", err)
		}
		return nil
	default:
		return domain.NewValidationError("output_format", fmt.Sprintf("unsupported format %q", format))
	}
}
