package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	OptionsPath string // hcl file or directory
	OutputDir   string // where generated sources are committed
	ReportPath  string // optional yaml report

	LogFormat   string
	LogLevel    string
	WorkerCount int
	CheckOnly   bool
}

// NewConfig validates cfg and fills in defaults for optional fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.OptionsPath == "" {
		return nil, errors.New("OptionsPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("WorkerCount must be at least 1, got %d", cfg.WorkerCount)
	}
	return &cfg, nil
}
