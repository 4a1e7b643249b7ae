package config

import "github.com/heartmarshall/lyricflow/internal/domain"

// Config is the root configuration of a lyricflow run.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Log      LogConfig      `yaml:"log"`
}

// PipelineConfig holds input locations and output settings of a run.
type PipelineConfig struct {
	SongsDir      string              `yaml:"songs_dir"      env:"LYRICFLOW_SONGS_DIR"      env-default:"songs"`
	SongExt       string              `yaml:"song_ext"       env:"LYRICFLOW_SONG_EXT"       env-default:".lrc"`
	StopwordsDir  string              `yaml:"stopwords_dir"  env:"LYRICFLOW_STOPWORDS_DIR"  env-default:"stopwords"`
	StopwordExt   string              `yaml:"stopword_ext"   env:"LYRICFLOW_STOPWORD_EXT"   env-default:".txt"`
	StopwordFiles []string            `yaml:"stopword_files" env:"LYRICFLOW_STOPWORD_FILES" env-separator:","`
	TopN          int                 `yaml:"top_n"          env:"LYRICFLOW_TOP_N"`
	FlowMode      domain.FlowMode     `yaml:"flow_mode"      env:"LYRICFLOW_FLOW_MODE"      env-default:"top"`
	FlowWords     []string            `yaml:"flow_words"     env:"LYRICFLOW_FLOW_WORDS"     env-separator:","`
	Workers       int                 `yaml:"workers"        env:"LYRICFLOW_WORKERS"`
	OutputFormat  domain.ReportFormat `yaml:"output_format"  env:"LYRICFLOW_OUTPUT_FORMAT"  env-default:"json"`
	OutputPath    string              `yaml:"output_path"    env:"LYRICFLOW_OUTPUT_PATH"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Default returns the configuration a run starts from before YAML and ENV are
// applied. Numeric fields whose zero value is invalid are filled here instead
// of through env-default, so an explicit 0 reaches Validate.
func Default() Config {
	return Config{
		Pipeline: PipelineConfig{
			TopN:    10,
			Workers: 1,
		},
	}
}
