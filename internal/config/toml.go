// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Generate GenerateConfig `toml:"generate"`
	History  HistoryConfig  `toml:"history"`
}

// GenerateConfig maps generation settings. Nil fields are unset.
type GenerateConfig struct {
	Lengths       []int   `toml:"lengths"`
	MinDigits     *int    `toml:"min-digits"`
	MinScripts    *int    `toml:"min-scripts"`
	LongLength    *int    `toml:"long-length"`
	LongMinDigits *int    `toml:"long-min-digits"`
	Width         *int    `toml:"width"`
	PoolFile      *string `toml:"pool-file"`
}

// HistoryConfig maps run history settings.
type HistoryConfig struct {
	Enabled *bool   `toml:"enabled"`
	Path    *string `toml:"path"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
