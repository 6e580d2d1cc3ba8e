// Package config handles configuration loading and validation for editbridge.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dshills/editbridge/internal/log"
)

// Config holds the complete editbridge configuration.
type Config struct {
	// Editor configuration for the edit engine.
	Editor EditorConfig `toml:"editor"`

	// Logging configuration.
	Logging LoggingConfig `toml:"logging"`

	// Workspace configuration for the seeded document set.
	Workspace WorkspaceConfig `toml:"workspace"`

	// Script configuration for automation hooks.
	Script ScriptConfig `toml:"script"`
}

// EditorConfig holds edit-engine tunables.
type EditorConfig struct {
	// MaxUndoLevels bounds the undo history. Oldest entries are evicted
	// once the bound is reached.
	MaxUndoLevels int `toml:"max_undo_levels"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level"`

	// Prefix is prepended to every log line.
	Prefix string `toml:"prefix"`

	// File is an optional log destination path; empty means stderr.
	File string `toml:"file"`
}

// WorkspaceConfig holds the initial document set.
type WorkspaceConfig struct {
	// SeedFile is an optional path to a JSON object of path -> content
	// used to populate the session at startup.
	SeedFile string `toml:"seed_file"`
}

// ScriptConfig holds automation-hook settings.
type ScriptConfig struct {
	// Enabled toggles the Lua scripting host.
	Enabled bool `toml:"enabled"`

	// Path is an optional Lua script executed against the session at
	// startup.
	Path string `toml:"path"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			MaxUndoLevels: 50,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Prefix: "editbridge",
		},
		Script: ScriptConfig{
			Enabled: true,
		},
	}
}

// Load reads a TOML configuration file, layered over defaults. A missing
// file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.decode(string(data)); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a TOML document layered over defaults.
func Parse(data string) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %v", ErrUnknownKey, undecoded)
	}
	return nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Editor.MaxUndoLevels < 1 {
		return fmt.Errorf("%w: editor.max_undo_levels must be >= 1, got %d",
			ErrInvalidValue, c.Editor.MaxUndoLevels)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidValue, c.Logging.Level)
	}
	return nil
}

// LogLevel returns the parsed logging level.
func (c *Config) LogLevel() log.Level {
	return log.ParseLevel(c.Logging.Level)
}
