package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"themekit/theme"
)

type Config struct {
	Theme     string         `toml:"theme"`     // path of the override file (toml, yaml, json, jsonc)
	Format    string         `toml:"format"`    // one of: json, toml, yaml, i3bar, preview
	Indent    int            `toml:"indent"`    // JSON indent width (default 2)
	LogLevel  string         `toml:"log_level"` // one of: debug, info, warn, error
	Strict    bool           `toml:"strict"`    // reject undeclared theme fields (default true)
	Overrides map[string]any `toml:"overrides"` // inline partial theme, applied under the file override
}

func Defaults() *Config {
	return &Config{
		Format:   "json",
		Indent:   2,
		LogLevel: "warn",
		Strict:   true,
	}
}

// Load loads configuration from explicit path or discovered search path.
// Precedence: provided path (if exists) else first existing search path else defaults.
// Missing file yields defaults and an error; parse errors also return defaults + error.
func Load(path string) (*Config, error) {
	defaults := Defaults()
	var chosen string
	if path != "" {
		chosen = path
	} else {
		for _, p := range searchPaths() {
			if _, err := os.Stat(p); err == nil {
				chosen = p
				break
			}
		}
	}
	if chosen == "" { // no file found
		return defaults, errors.New("no config file found; using defaults")
	}
	data, err := os.ReadFile(chosen)
	if err != nil {
		return defaults, fmt.Errorf("read config: %w", err)
	}
	cfg := Defaults()
	md, err := toml.Decode(string(data), cfg) // decode overlays onto defaults
	if err != nil {
		return defaults, fmt.Errorf("parse config: %w", err)
	}
	// A relative theme path is relative to the config file, not the working directory.
	if md.IsDefined("theme") && cfg.Theme != "" && !filepath.IsAbs(cfg.Theme) {
		cfg.Theme = filepath.Join(filepath.Dir(chosen), cfg.Theme)
	}
	cfg.normalize()
	return cfg, nil
}

func searchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "themekit", "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "themekit", "config.toml"))
	}
	return out
}

// normalize clamps and validates config values after decoding.
func (c *Config) normalize() {
	c.Indent = clampInt(c.Indent, 0, 8)
	c.Format = strings.ToLower(c.Format)
	if !ValidFormat(c.Format) {
		c.Format = "json"
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	if _, ok := logLevels[c.LogLevel]; !ok {
		c.LogLevel = "warn"
	}
}

// InlineOverrides returns the [overrides] table as a normalized partial
// theme, or nil when the table is absent.
func (c *Config) InlineOverrides() theme.Tree {
	if len(c.Overrides) == 0 {
		return nil
	}
	return theme.Clone(c.Overrides)
}

// SlogLevel maps LogLevel to a slog level, defaulting to warn.
func (c *Config) SlogLevel() slog.Level {
	if lvl, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return lvl
	}
	return slog.LevelWarn
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func clampInt(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ValidFormat reports whether f names a supported output format.
func ValidFormat(f string) bool {
	switch f {
	case "json", "toml", "yaml", "i3bar", "preview":
		return true
	}
	return false
}
