// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"

	"github.com/julianstephens/streak/internal/constants"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultStreaksDir returns the default directory holding streak files.
func DefaultStreaksDir() string {
	return filepath.Join(XDGDataHome(), constants.AppName)
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), constants.AppName, "config.toml")
}

// DefaultConfigDir returns the directory logs and config live in.
func DefaultConfigDir() string {
	return filepath.Join(XDGConfigHome(), constants.AppName)
}
