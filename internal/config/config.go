// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const appName = "tudu"

// Config represents the application configuration.
type Config struct {
	Editor EditorConfig `yaml:"editor"`
	UI     UIConfig     `yaml:"ui"`
	Log    LogConfig    `yaml:"log"`
}

// EditorConfig holds settings for the new-item editor.
type EditorConfig struct {
	// CharLimit caps the description length in characters (0 = no cap)
	CharLimit int `yaml:"char_limit"`

	// AllowEmptySubmit lets Enter add an item with a blank description
	AllowEmptySubmit bool `yaml:"allow_empty_submit"`

	// BellOnLimit rings the terminal bell when the buffer is full
	BellOnLimit bool `yaml:"bell_on_limit"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	Title              string `yaml:"title"`
	PopupWidthPercent  int    `yaml:"popup_width_percent"`
	PopupHeightPercent int    `yaml:"popup_height_percent"`
	ShowStatus         bool   `yaml:"show_status"`
}

// LogConfig controls the debug log. An empty level keeps logging silent.
type LogConfig struct {
	Level      string `yaml:"level,omitempty"` // "debug", "info", "warn", "error"
	File       string `yaml:"file,omitempty"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			CharLimit:   250,
			BellOnLimit: true,
		},
		UI: UIConfig{
			Title:              "TuDu",
			PopupWidthPercent:  75,
			PopupHeightPercent: 15,
			ShowStatus:         true,
		},
		Log: LogConfig{
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Honors XDG_CONFIG_HOME and creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(homeDir, ".config")
	}

	configDir := filepath.Join(base, appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultLogPath returns where the debug log goes when no file is configured.
func DefaultLogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName+".log"), nil
}

// Load reads the configuration from the default config file.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration at path.
// If the file doesn't exist, returns a default configuration.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to path.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Editor.CharLimit < 0 {
		return fmt.Errorf("editor.char_limit must not be negative, got %d", c.Editor.CharLimit)
	}
	if err := checkPercent("ui.popup_width_percent", c.UI.PopupWidthPercent); err != nil {
		return err
	}
	if err := checkPercent("ui.popup_height_percent", c.UI.PopupHeightPercent); err != nil {
		return err
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}

func checkPercent(name string, v int) error {
	if v < 1 || v > 100 {
		return fmt.Errorf("%s must be between 1 and 100, got %d", name, v)
	}
	return nil
}

// WriteTemplate writes the commented template config to path.
func WriteTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
