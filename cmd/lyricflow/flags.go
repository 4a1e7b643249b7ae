package main

import (
	"flag"

	"github.com/heartmarshall/lyricflow/internal/config"
	"github.com/heartmarshall/lyricflow/internal/domain"
)

// overrides holds the flags that take precedence over file and ENV config.
type overrides struct {
	songsDir     *string
	stopwordsDir *string
	stopwords    *string
	topN         *int
	flowMode     *string
	flowWords    *string
	workers      *int
	format       *string
	output       *string
	logLevel     *string
	logFormat    *string
}

func registerOverrides(fs *flag.FlagSet) *overrides {
	return &overrides{
		songsDir:     fs.String("songs-dir", "", "directory with lyric files"),
		stopwordsDir: fs.String("stopwords-dir", "", "directory with stopword lists"),
		stopwords:    fs.String("stopwords", "", "comma-separated extra stopword files"),
		topN:         fs.Int("top-n", 0, "words per song in flows"),
		flowMode:     fs.String("flow-mode", "", `flow mode: "top", "common" or "words"`),
		flowWords:    fs.String("words", "", `comma-separated words for flow mode "words"`),
		workers:      fs.Int("workers", 0, "songs processed in parallel"),
		format:       fs.String("format", "", "report format: json or yaml"),
		output:       fs.String("output", "", "report file (default: stdout)"),
		logLevel:     fs.String("log-level", "", "debug, info, warn or error"),
		logFormat:    fs.String("log-format", "", "json, text or pretty"),
	}
}

// apply copies every flag that was set on the command line into cfg.
func (o *overrides) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "songs-dir":
			cfg.Pipeline.SongsDir = *o.songsDir
		case "stopwords-dir":
			cfg.Pipeline.StopwordsDir = *o.stopwordsDir
		case "stopwords":
			cfg.Pipeline.StopwordFiles = config.ParseList(*o.stopwords)
		case "top-n":
			cfg.Pipeline.TopN = *o.topN
		case "flow-mode":
			cfg.Pipeline.FlowMode = domain.FlowMode(*o.flowMode)
		case "words":
			cfg.Pipeline.FlowWords = config.ParseList(*o.flowWords)
		case "workers":
			cfg.Pipeline.Workers = *o.workers
		case "format":
			cfg.Pipeline.OutputFormat = domain.ReportFormat(*o.format)
		case "output":
			cfg.Pipeline.OutputPath = *o.output
		case "log-level":
			cfg.Log.Level = *o.logLevel
		case "log-format":
			cfg.Log.Format = *o.logFormat
		}
	})
}
