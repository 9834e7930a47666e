package config

import (
	"errors"
	"fmt"
)

// New builds a validated configuration from command-line values.
// An empty files list selects standard input.
func New(files []string, numberLines, numberNonblankLines bool) (*Config, error) {
	cfg := DefaultConfig()
	if len(files) > 0 {
		cfg.Files = append([]string(nil), files...)
	}
	cfg.NumberLines = numberLines
	cfg.NumberNonblankLines = numberNonblankLines

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if len(cfg.Files) == 0 {
		return errors.New("files: at least one source is required")
	}

	for i, f := range cfg.Files {
		if f == "" {
			return fmt.Errorf("files[%d]: source must not be empty", i)
		}
	}

	if cfg.NumberLines && cfg.NumberNonblankLines {
		return errors.New("number_lines and number_nonblank_lines are mutually exclusive")
	}

	return nil
}
