// Package config handles configuration loading and validation for txtpad.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/hay-kot/txtpad/internal/core/document"
	"github.com/hay-kot/txtpad/internal/core/styles"
	"github.com/hay-kot/txtpad/internal/core/validate"
)

// Config holds the application configuration.
type Config struct {
	DownloadDir string         `yaml:"download_dir"`
	DefaultName string         `yaml:"default_name"`
	Download    DownloadConfig `yaml:"download"`
	Picker      PickerConfig   `yaml:"picker"`
	Editor      EditorConfig   `yaml:"editor"`
	TUI         TUIConfig      `yaml:"tui"`
}

// DownloadConfig controls how saved documents are written.
type DownloadConfig struct {
	// Overwrite replaces existing files instead of writing "name (1).txt".
	Overwrite bool `yaml:"overwrite"`
}

// PickerConfig controls the open-file picker.
type PickerConfig struct {
	Accept     []string `yaml:"accept"`      // doublestar patterns matched against file names
	ShowHidden bool     `yaml:"show_hidden"` // list dotfiles and dot-directories
}

// EditorConfig controls the text area and document lifecycle.
type EditorConfig struct {
	AbortNewOnDecline bool   `yaml:"abort_new_on_decline"`
	ShowLineNumbers   bool   `yaml:"show_line_numbers"`
	Placeholder       string `yaml:"placeholder"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DownloadDir: DefaultDownloadDir(),
		DefaultName: document.DefaultName,
		Picker: PickerConfig{
			Accept: []string{"*.txt"},
		},
		Editor: EditorConfig{
			Placeholder: "Type or paste your text here...",
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// DefaultDownloadDir returns $XDG_DOWNLOAD_DIR, falling back to ~/Downloads.
func DefaultDownloadDir() string {
	if dir := os.Getenv("XDG_DOWNLOAD_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Downloads")
}

// Load reads configuration from the given path. If configPath is empty or the
// file doesn't exist, defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.DownloadDir == "" {
		c.DownloadDir = defaults.DownloadDir
	}
	c.DownloadDir = expandHome(c.DownloadDir)
	if c.DefaultName == "" {
		c.DefaultName = defaults.DefaultName
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	// An explicit empty list means "no filter"; only a missing key gets the default.
	if c.Picker.Accept == nil {
		c.Picker.Accept = defaults.Picker.Accept
	}
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("download_dir", c.DownloadDir, validate.Required),
		validate.FileNameField("default_name", c.DefaultName),
		criterio.Run("tui.theme", c.TUI.Theme, knownTheme),
		c.validateAccept(),
	)
}

func (c *Config) validateAccept() error {
	var errs criterio.FieldErrorsBuilder
	for i, pattern := range c.Picker.Accept {
		field := fmt.Sprintf("picker.accept[%d]", i)
		if strings.TrimSpace(pattern) == "" {
			errs = errs.Append(field, fmt.Errorf("pattern cannot be empty"))
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			errs = errs.Append(field, fmt.Errorf("invalid pattern %q", pattern))
		}
	}
	return errs.ToError()
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
