// Command lyricflow analyzes a directory of .lrc lyric files: it builds
// per-song and global word frequencies, filtered by stopword lists, and the
// song -> word flows used by Sankey renderers. The report goes to stdout or
// --output as JSON or YAML.
//
// Flags:
//
//	--config         path to YAML config file (default: $CONFIG_PATH or ./config.yaml)
//	--songs-dir      directory with lyric files
//	--stopwords-dir  directory with stopword lists
//	--stopwords      comma-separated extra stopword files
//	--top-n          words per song in flows
//	--flow-mode      "top" (per-song top words), "common" (global top words) or "words"
//	--words          comma-separated words linked in flow mode "words"
//	--workers        songs processed in parallel
//	--format         json or yaml
//	--output         report file (default: stdout)
//	--strict         exit 1 when the run produced warnings
//	--version        print version and exit
//
// Exit codes: 0 = success, 1 = error (or warnings with --strict).
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/lyricflow/internal/app"
	"github.com/heartmarshall/lyricflow/internal/app/pipeline"
	"github.com/heartmarshall/lyricflow/internal/config"
	"github.com/heartmarshall/lyricflow/internal/report"
)

func main() {
	fs := flag.NewFlagSet("lyricflow", flag.ExitOnError)
	configFlag := fs.String("config", "", "path to YAML config file")
	strictFlag := fs.Bool("strict", false, "exit 1 when the run produced warnings")
	versionFlag := fs.Bool("version", false, "print version and exit")
	ov := registerOverrides(fs)
	_ = fs.Parse(os.Args[1:])

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}

	// A missing .env is fine.
	_ = godotenv.Load()

	path := *configFlag
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	ov.apply(fs, cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid flags: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting lyricflow", slog.String("version", app.BuildVersion()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := pipeline.NewPipeline(logger, cfg.Pipeline, nil).Run(ctx)
	if err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := writeReport(cfg.Pipeline, res); err != nil {
		logger.Error("write report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if res.HasWarnings() {
		logger.Warn("pipeline completed with warnings", slog.Int("warnings", len(res.Warnings)))
		if *strictFlag {
			os.Exit(1)
		}
		return
	}

	logger.Info("pipeline completed successfully")
}

func writeReport(cfg config.PipelineConfig, res *pipeline.Result) (err error) {
	var w io.Writer = os.Stdout
	if cfg.OutputPath != "" {
		f, cerr := os.Create(cfg.OutputPath)
		if cerr != nil {
			return fmt.Errorf("create %s: %w", cfg.OutputPath, cerr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", cfg.OutputPath, cerr)
			}
		}()
		w = f
	}
	return report.Encode(w, cfg.OutputFormat, res)
}
