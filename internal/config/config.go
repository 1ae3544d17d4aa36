// Package config loads folio's runtime settings: defaults, then an optional
// YAML file, then FOLIO_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is the prefix for environment overrides (FOLIO_BREAKPOINT, ...).
const EnvPrefix = "FOLIO_"

// DefaultPath is the config file read when none is given.
const DefaultPath = "folio.yml"

// Relay names accepted by the relay setting.
const (
	RelayLog  = "log"
	RelayNone = "none"
)

// Config holds every runtime setting.
type Config struct {
	// ContentPath is a YAML content file; empty uses the built-in page.
	ContentPath string `koanf:"content_path"`
	// Breakpoint is the terminal width (columns) below which the narrow
	// layout with the hamburger menu is used.
	Breakpoint   int    `koanf:"breakpoint"`
	SmoothScroll bool   `koanf:"smooth_scroll"`
	Watch        bool   `koanf:"watch"`
	LogFile      string `koanf:"log_file"`
	LogLevel     string `koanf:"log_level"`
	GlamourStyle string `koanf:"glamour_style"`
	Relay        string `koanf:"relay"`
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		Breakpoint:   80,
		SmoothScroll: true,
		LogLevel:     "info",
		GlamourStyle: "auto",
		Relay:        RelayLog,
	}
}

// Load reads configuration from path (skipped if the file does not exist),
// then overlays FOLIO_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

var validGlamourStyles = map[string]bool{
	"auto":  true,
	"dark":  true,
	"light": true,
	"notty": true,
	"ascii": true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Breakpoint <= 0 {
		return fmt.Errorf("breakpoint must be positive, got %d", c.Breakpoint)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if !validGlamourStyles[c.GlamourStyle] {
		return fmt.Errorf("invalid glamour_style %q: must be one of auto, dark, light, notty, ascii", c.GlamourStyle)
	}
	switch c.Relay {
	case RelayLog, RelayNone:
	default:
		return fmt.Errorf("invalid relay %q: must be one of log, none", c.Relay)
	}
	return nil
}
