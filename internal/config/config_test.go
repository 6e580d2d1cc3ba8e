package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/editbridge/internal/log"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Editor.MaxUndoLevels != 50 {
		t.Errorf("expected 50 undo levels, got %d", cfg.Editor.MaxUndoLevels)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected info level, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Prefix != "editbridge" {
		t.Errorf("expected editbridge prefix, got %q", cfg.Logging.Prefix)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestParseLayeredOverDefaults(t *testing.T) {
	cfg, err := Parse(`
[editor]
max_undo_levels = 10

[logging]
level = "debug"
`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if cfg.Editor.MaxUndoLevels != 10 {
		t.Errorf("expected 10, got %d", cfg.Editor.MaxUndoLevels)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug, got %q", cfg.Logging.Level)
	}
	// Untouched keys keep their defaults.
	if cfg.Logging.Prefix != "editbridge" {
		t.Errorf("default prefix lost: %q", cfg.Logging.Prefix)
	}
	if !cfg.Script.Enabled {
		t.Error("default script.enabled lost")
	}
}

func TestParseUnknownKey(t *testing.T) {
	_, err := Parse(`
[editor]
max_undo_leves = 10
`)
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse(`[editor`); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero undo levels", func(c *Config) { c.Editor.MaxUndoLevels = 0 }},
		{"negative undo levels", func(c *Config) { c.Editor.MaxUndoLevels = -3 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidValue) {
				t.Errorf("expected ErrInvalidValue, got %v", err)
			}
		})
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg.Editor.MaxUndoLevels != 50 {
		t.Errorf("expected defaults, got %d", cfg.Editor.MaxUndoLevels)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editbridge.toml")
	doc := `
[editor]
max_undo_levels = 25

[logging]
level = "warn"
prefix = "eb"

[workspace]
seed_file = "seed.json"

[script]
enabled = false
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Editor.MaxUndoLevels != 25 {
		t.Errorf("max_undo_levels = %d", cfg.Editor.MaxUndoLevels)
	}
	if cfg.Logging.Prefix != "eb" {
		t.Errorf("prefix = %q", cfg.Logging.Prefix)
	}
	if cfg.Workspace.SeedFile != "seed.json" {
		t.Errorf("seed_file = %q", cfg.Workspace.SeedFile)
	}
	if cfg.Script.Enabled {
		t.Error("expected script disabled")
	}
	if cfg.LogLevel() != log.LevelWarn {
		t.Errorf("unexpected level %v", cfg.LogLevel())
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("empty path must not error: %v", err)
	}
	if cfg.Editor.MaxUndoLevels != 50 {
		t.Errorf("expected defaults, got %d", cfg.Editor.MaxUndoLevels)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[editor]\nmax_undo_levels = 0\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	if _, err := Load(path); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
}
