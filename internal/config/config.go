// Package config holds the viewer's static layout constants: the pinned
// bar's bottom margin, the spacing above the inline control, and the accent
// color. These are read once at startup and never mutated at runtime.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// Default values for configuration fields. Documented here as the
	// canonical source of defaults.
	DefaultBottomMargin  = 0   // Rows between the pinned bar and the screen bottom
	DefaultInlineSpacing = 1   // Blank rows between the body and the inline control
	DefaultAccentColor   = "6" // ANSI cyan
)

// Options holds configurable paths for loading, overridable in tests.
type Options struct {
	ConfigHome    string // Override for the home directory
	AnchorDirName string // Name of the config directory (default: ".anchor")
}

// DefaultOptions returns the default config options.
func DefaultOptions() Options {
	home, _ := os.UserHomeDir()
	return Options{
		ConfigHome:    home,
		AnchorDirName: ".anchor",
	}
}

// Config is the persisted viewer configuration.
type Config struct {
	BottomMargin  int    `json:"bottom_margin"`
	InlineSpacing int    `json:"inline_spacing"`
	AccentColor   string `json:"accent_color,omitempty"`

	// UnknownFields stores any fields from the config file that aren't
	// recognized. These are preserved when saving to avoid data loss.
	UnknownFields map[string]interface{} `json:"-"`
}

// knownFields lists the field names we recognize in config JSON.
var knownFields = map[string]bool{
	"bottom_margin":  true,
	"inline_spacing": true,
	"accent_color":   true,
}

// UnmarshalJSON captures unknown fields alongside the known ones.
func (c *Config) UnmarshalJSON(data []byte) error {
	var rawMap map[string]interface{}
	if err := json.Unmarshal(data, &rawMap); err != nil {
		return err
	}

	// Type alias avoids recursing back into this method.
	type configAlias Config
	var alias configAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	c.BottomMargin = alias.BottomMargin
	c.InlineSpacing = alias.InlineSpacing
	c.AccentColor = alias.AccentColor

	c.UnknownFields = make(map[string]interface{})
	for key, value := range rawMap {
		if !knownFields[key] {
			c.UnknownFields[key] = value
		}
	}
	return nil
}

// MarshalJSON writes known fields over any preserved unknown ones.
func (c *Config) MarshalJSON() ([]byte, error) {
	result := make(map[string]interface{})
	for key, value := range c.UnknownFields {
		result[key] = value
	}

	result["bottom_margin"] = c.BottomMargin
	result["inline_spacing"] = c.InlineSpacing
	if c.AccentColor != "" {
		result["accent_color"] = c.AccentColor
	}
	return json.Marshal(result)
}

// Default returns a configuration with the documented defaults.
func Default() *Config {
	return &Config{
		BottomMargin:  DefaultBottomMargin,
		InlineSpacing: DefaultInlineSpacing,
		AccentColor:   DefaultAccentColor,
		UnknownFields: make(map[string]interface{}),
	}
}

// Load loads configuration from ~/.anchor/config.json.
func Load() (*Config, error) {
	return LoadWithOptions(DefaultOptions())
}

// LoadWithOptions loads configuration with custom options. A missing file is
// created with defaults; after loading, the config is saved back so the file
// always carries every known field.
func LoadWithOptions(opts Options) (*Config, error) {
	if opts.ConfigHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		opts.ConfigHome = home
	}

	configPath := filepath.Join(opts.ConfigHome, opts.AnchorDirName, "config.json")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.SaveWithOptions(opts); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.UnknownFields == nil {
		cfg.UnknownFields = make(map[string]interface{})
	}
	if cfg.AccentColor == "" {
		cfg.AccentColor = DefaultAccentColor
	}

	if err := cfg.SaveWithOptions(opts); err != nil {
		return nil, fmt.Errorf("failed to save config with defaults: %w", err)
	}
	return &cfg, nil
}

// Save persists the configuration to disk.
func (c *Config) Save() error {
	return c.SaveWithOptions(DefaultOptions())
}

// SaveWithOptions persists the configuration with custom options.
func (c *Config) SaveWithOptions(opts Options) error {
	if opts.ConfigHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		opts.ConfigHome = home
	}

	configPath := filepath.Join(opts.ConfigHome, opts.AnchorDirName, "config.json")
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
