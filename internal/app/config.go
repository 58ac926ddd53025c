package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	WorkbookPath string // hcl file or directory

	LogFormat string
	LogLevel  string

	ShowClosure bool // print the recomputed closure of every assignment
	Strict      bool // a rejected assignment fails the run
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.WorkbookPath == "" {
		return nil, errors.New("WorkbookPath is a required configuration field and cannot be empty")
	}

	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "info"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
