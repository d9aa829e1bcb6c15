// Package config loads bnrec's small runtime configuration file, the only
// thing the out-of-scope archive container needs from this module: where
// the archive lives, and the default recommendation thresholds to apply
// when a caller doesn't supply its own filter/maxLength.
package config

import (
	"fmt"
	"strings"

	"gopkg.in/ini.v1"
)

// Config is bnrec's runtime configuration, loaded from an ini file.
type Config struct {
	Recommend RecommendConfig
	Log       LogConfig
}

// RecommendConfig holds the [recommend] section: the archive directory and
// the default ranking thresholds applied by cmd/bnrec when the caller does
// not override them.
type RecommendConfig struct {
	ArchiveDir   string  `ini:"archive_dir"`
	MinRelevance float64 `ini:"min_relevance"`
	MaxResults   int     `ini:"max_results"`
}

// LogConfig holds the [log] section.
type LogConfig struct {
	Level string `ini:"level"`
}

// Default returns the configuration used when no ini file is supplied.
func Default() *Config {
	return &Config{
		Recommend: RecommendConfig{
			ArchiveDir:   ".",
			MinRelevance: 0.1,
			MaxResults:   5,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path as an ini file and maps its [recommend] and [log]
// sections onto a Config, starting from Default's values so an omitted
// section still yields sane defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	src, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return nil, fmt.Errorf("config: load %q: %w", path, err)
	}

	if src.HasSection("recommend") {
		if err := src.Section("recommend").MapTo(&cfg.Recommend); err != nil {
			return nil, fmt.Errorf("config: map [recommend]: %w", err)
		}
	}
	if src.HasSection("log") {
		if err := src.Section("log").MapTo(&cfg.Log); err != nil {
			return nil, fmt.Errorf("config: map [log]: %w", err)
		}
	}

	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Recommend.MaxResults <= 0 {
		cfg.Recommend.MaxResults = 5
	}

	return cfg, nil
}
