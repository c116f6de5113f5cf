package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Summary     SummaryConfig     `yaml:"summary"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Translate   TranslateConfig   `yaml:"translate"`
	Tools       ToolsConfig       `yaml:"tools"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type SummaryConfig struct {
	ChunkSize int `yaml:"chunk_size"`
	// Pointer so an explicit chunk_overlap: 0 survives defaulting.
	ChunkOverlap *int   `yaml:"chunk_overlap"`
	Language     string `yaml:"language"`
	Concurrent   *bool  `yaml:"concurrent"`
	MaxWorkers   int    `yaml:"max_workers"`
	SavePartials *bool  `yaml:"save_partials"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

type TranslateConfig struct {
	Enabled        bool   `yaml:"enabled"`
	TargetLanguage string `yaml:"target_language"`
	BatchSize      int    `yaml:"batch_size"`
	MaxWorkers     int    `yaml:"max_workers"`
}

type ToolsConfig struct {
	YtDlpPath     string `yaml:"ytdlp_path"`
	FFmpegPath    string `yaml:"ffmpeg_path"`
	WhisperBinary string `yaml:"whisper_binary"`
	WhisperModel  string `yaml:"whisper_model"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads a YAML config file, applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("gemini.api_keys is required")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Summary.ChunkSize == 0 {
		c.Summary.ChunkSize = 100000
	}
	if c.Summary.ChunkOverlap == nil {
		c.Summary.ChunkOverlap = intPtr(300)
	}
	if c.Summary.Language == "" {
		c.Summary.Language = "Chinese"
	}
	if c.Summary.MaxWorkers == 0 {
		c.Summary.MaxWorkers = 5
	}
	if c.Summary.Concurrent == nil {
		c.Summary.Concurrent = boolPtr(true)
	}
	if c.Summary.SavePartials == nil {
		c.Summary.SavePartials = boolPtr(true)
	}
	if c.Translate.TargetLanguage == "" {
		c.Translate.TargetLanguage = c.Summary.Language
	}
	if c.Translate.BatchSize == 0 {
		c.Translate.BatchSize = 15
	}
	if c.Translate.MaxWorkers == 0 {
		c.Translate.MaxWorkers = 5
	}
	if c.Tools.YtDlpPath == "" {
		c.Tools.YtDlpPath = "yt-dlp"
	}
	if c.Tools.FFmpegPath == "" {
		c.Tools.FFmpegPath = "ffmpeg"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	if *c.Summary.ChunkOverlap < 0 {
		return fmt.Errorf("summary.chunk_overlap must not be negative")
	}
	if *c.Summary.ChunkOverlap >= c.Summary.ChunkSize {
		return fmt.Errorf("summary.chunk_overlap must be smaller than summary.chunk_size")
	}

	return nil
}

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }
