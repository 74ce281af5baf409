package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/slowtype/internal/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Practice.Lang != nil || cfg.History.MaxEntries != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfigSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[practice]
lang = "th"
mode = "quotes"
duration = 30
levels = "easy,hard"

[display]
smoothness = false
result-chars = false

[history]
max-entries = 10
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Practice.Lang == nil || *cfg.Practice.Lang != "th" {
		t.Fatalf("unexpected lang: %v", cfg.Practice.Lang)
	}
	if cfg.Practice.Duration == nil || *cfg.Practice.Duration != 30 {
		t.Fatalf("unexpected duration: %v", cfg.Practice.Duration)
	}
	if cfg.Practice.CapsPct != nil {
		t.Fatalf("expected unset caps")
	}
	if cfg.History.MaxEntries == nil || *cfg.History.MaxEntries != 10 {
		t.Fatalf("unexpected max entries: %v", cfg.History.MaxEntries)
	}

	display := cfg.Display.Apply(model.DefaultDisplay())
	if display.StatsSmoothness || display.ResultChars {
		t.Fatalf("expected toggles to be disabled: %+v", display)
	}
	if !display.StatsWPM || !display.ResultTime {
		t.Fatalf("expected untouched toggles to stay enabled: %+v", display)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[practice\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/config")
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	if got := DefaultDBPath(); got != filepath.Join("/tmp/data", "slowtype", "slowtype.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/config", "slowtype", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/tmp/state", "slowtype", "slowtype.log") {
		t.Fatalf("unexpected log path: %s", got)
	}
}
