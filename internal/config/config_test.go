package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/streak/internal/models"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[streaks]
dir = "/tmp/my-streaks"
default-tick = "weekly"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Streaks.Dir == nil || *cfg.Streaks.Dir != "/tmp/my-streaks" {
		t.Errorf("expected dir /tmp/my-streaks, got %v", cfg.Streaks.Dir)
	}
	if cfg.Streaks.DefaultTick == nil || *cfg.Streaks.DefaultTick != "weekly" {
		t.Errorf("expected default-tick weekly, got %v", cfg.Streaks.DefaultTick)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config file should not be an error, got %v", err)
	}
	if cfg.Streaks.Dir != nil {
		t.Errorf("expected zero config, got dir %v", *cfg.Streaks.Dir)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "[streaks\ndir =")
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected decode error for malformed toml")
	}
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(FileConfig{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != DefaultStreaksDir() {
		t.Errorf("expected default dir %q, got %q", DefaultStreaksDir(), cfg.Dir)
	}
	if cfg.DefaultTick != models.GranularityDaily {
		t.Errorf("expected Daily default tick, got %s", cfg.DefaultTick)
	}
}

func TestResolveFileValues(t *testing.T) {
	dir := "/data/streaks"
	tick := "monthly"
	file := FileConfig{Streaks: StreaksConfig{Dir: &dir, DefaultTick: &tick}}

	cfg, err := Resolve(file, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != dir {
		t.Errorf("expected dir %q, got %q", dir, cfg.Dir)
	}
	if cfg.DefaultTick != models.GranularityMonthly {
		t.Errorf("expected Monthly, got %s", cfg.DefaultTick)
	}
}

func TestResolveDirOverrideWins(t *testing.T) {
	dir := "/data/streaks"
	file := FileConfig{Streaks: StreaksConfig{Dir: &dir}}

	cfg, err := Resolve(file, "/override")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Dir != "/override" {
		t.Errorf("expected override dir, got %q", cfg.Dir)
	}
}

func TestResolveInvalidDefaultTick(t *testing.T) {
	tick := "fortnightly"
	file := FileConfig{Streaks: StreaksConfig{DefaultTick: &tick}}

	if _, err := Resolve(file, ""); err == nil {
		t.Error("expected error for unknown default-tick")
	}
}

func TestXDGConfigHomeEnv(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got := XDGConfigHome(); got != "/custom/config" {
		t.Errorf("expected /custom/config, got %q", got)
	}
}

func TestXDGDataHomeEnv(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	if got := DefaultStreaksDir(); got != filepath.Join("/custom/data", "streak") {
		t.Errorf("unexpected streaks dir %q", got)
	}
}
