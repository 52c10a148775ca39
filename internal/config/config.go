package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Canvas   CanvasConfig  `yaml:"canvas"`
	Storage  StorageConfig `yaml:"storage"`
	Sync     SyncConfig    `yaml:"sync"`
	Plan     PlanConfig    `yaml:"plan"`
	LogLevel string        `yaml:"log_level"`
}

type CanvasConfig struct {
	BaseURL       string        `yaml:"base_url"`
	SessionCookie string        `yaml:"session_cookie"`
	PageSize      int           `yaml:"page_size"`
	Timeout       time.Duration `yaml:"timeout"`
	Retry         RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type StorageConfig struct {
	DownloadDir string `yaml:"download_dir"`
}

type SyncConfig struct {
	CourseTimeout time.Duration `yaml:"course_timeout"`
}

type PlanConfig struct {
	Timezone            string `yaml:"timezone"`
	OutputDir           string `yaml:"output_dir"`
	AssignmentPrepDays  int    `yaml:"assignment_prep_days"`
	QuizPrepDays        int    `yaml:"quiz_prep_days"`
	MaxInstructionChars int    `yaml:"max_instruction_chars"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Canvas.BaseURL == "" {
		return nil, fmt.Errorf("canvas.base_url is required")
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Canvas.PageSize == 0 {
		c.Canvas.PageSize = 100
	}
	if c.Canvas.Timeout == 0 {
		c.Canvas.Timeout = 60 * time.Second
	}
	if c.Canvas.Retry.MaxAttempts == 0 {
		c.Canvas.Retry.MaxAttempts = 3
	}
	if c.Canvas.Retry.InitialBackoff == 0 {
		c.Canvas.Retry.InitialBackoff = 1 * time.Second
	}
	if c.Canvas.Retry.MaxBackoff == 0 {
		c.Canvas.Retry.MaxBackoff = 30 * time.Second
	}
	if c.Storage.DownloadDir == "" {
		c.Storage.DownloadDir = "canvas_downloads"
	}
	if c.Sync.CourseTimeout == 0 {
		c.Sync.CourseTimeout = 15 * time.Minute
	}
	if c.Plan.Timezone == "" {
		c.Plan.Timezone = "Local"
	}
	if c.Plan.OutputDir == "" {
		c.Plan.OutputDir = "_weekly"
	}
	if c.Plan.AssignmentPrepDays == 0 {
		c.Plan.AssignmentPrepDays = 3
	}
	if c.Plan.QuizPrepDays == 0 {
		c.Plan.QuizPrepDays = 2
	}
	if c.Plan.MaxInstructionChars == 0 {
		c.Plan.MaxInstructionChars = 4000
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Location resolves the configured timezone, falling back to the system
// local zone when the name cannot be loaded.
func (p PlanConfig) Location() *time.Location {
	if p.Timezone == "" || p.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
