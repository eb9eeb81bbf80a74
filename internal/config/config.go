// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/julianstephens/streak/internal/models"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Streaks StreaksConfig `toml:"streaks"`
}

// StreaksConfig maps streak-related settings.
type StreaksConfig struct {
	Dir         *string `toml:"dir"`
	DefaultTick *string `toml:"default-tick"`
}

// Config is the resolved runtime configuration after defaults and overrides.
type Config struct {
	Dir         string
	DefaultTick models.Granularity
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
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Resolve merges the file config with defaults and the CLI --dir override.
func Resolve(file FileConfig, dirOverride string) (Config, error) {
	cfg := Config{
		Dir:         DefaultStreaksDir(),
		DefaultTick: models.GranularityDaily,
	}
	if file.Streaks.Dir != nil && *file.Streaks.Dir != "" {
		cfg.Dir = *file.Streaks.Dir
	}
	if dirOverride != "" {
		cfg.Dir = dirOverride
	}
	if file.Streaks.DefaultTick != nil && *file.Streaks.DefaultTick != "" {
		g, err := models.ParseGranularity(*file.Streaks.DefaultTick)
		if err != nil {
			return cfg, fmt.Errorf("invalid default-tick in config: %w", err)
		}
		cfg.DefaultTick = g
	}
	return cfg, nil
}
