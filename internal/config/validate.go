package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/lyricflow/internal/domain"
)

var (
	logFormats = []string{"json", "text", "pretty"}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically. Command-line
// overrides applied after Load should be followed by another Validate.
func (c *Config) Validate() error {
	if err := c.Pipeline.validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (p *PipelineConfig) validate() error {
	if strings.TrimSpace(p.SongsDir) == "" {
		return fmt.Errorf("songs_dir must not be empty")
	}
	if p.TopN < 1 {
		return fmt.Errorf("top_n must be >= 1 (got %d)", p.TopN)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers must be >= 1 (got %d)", p.Workers)
	}
	if !p.FlowMode.IsValid() {
		return fmt.Errorf("flow_mode must be %q, %q or %q (got %q)",
			domain.FlowModeTop, domain.FlowModeCommon, domain.FlowModeWords, p.FlowMode)
	}
	p.FlowWords = ParseList(strings.Join(p.FlowWords, ","))
	if p.FlowMode == domain.FlowModeWords && len(p.FlowWords) == 0 {
		return fmt.Errorf("flow_words must not be empty when flow_mode is %q", domain.FlowModeWords)
	}
	if !p.OutputFormat.IsValid() {
		return fmt.Errorf("output_format must be %q or %q (got %q)", domain.ReportFormatJSON, domain.ReportFormatYAML, p.OutputFormat)
	}

	p.StopwordFiles = ParseList(strings.Join(p.StopwordFiles, ","))
	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be one of %s (got %q)", strings.Join(logLevels, ", "), l.Level)
	}
	if !slices.Contains(logFormats, l.Format) {
		return fmt.Errorf("format must be one of %s (got %q)", strings.Join(logFormats, ", "), l.Format)
	}
	return nil
}

// ParseList splits a comma-separated string into trimmed, non-empty items.
// An empty string returns a nil slice.
func ParseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}
