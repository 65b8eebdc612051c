// Package config handles jot configuration parsing and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gl7857/jot/internal/constants"
)

// Theme selects the color scheme of the interactive screen.
type Theme string

const (
	ThemeAuto  Theme = "auto"  // Detect from the terminal background
	ThemeDark  Theme = "dark"  // Force dark colors
	ThemeLight Theme = "light" // Force light colors
)

// Config represents the jot configuration.
type Config struct {
	StorageRoot string `yaml:"storage_root"`
	FileName    string `yaml:"file_name"`
	Theme       Theme  `yaml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		FileName: constants.DefaultNoteFileName,
		Theme:    ThemeAuto,
	}
}

// Load reads the configuration from the given state directory.
func Load(stateDir string) (*Config, error) {
	configPath := filepath.Join(stateDir, constants.ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(string(data))
}

// parseConfig parses the configuration from a string.
// Unknown keys and invalid values are ignored, keeping the defaults.
func parseConfig(content string) (*Config, error) {
	cfg := DefaultConfig()

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		// Skip empty lines and comments
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "storage_root":
			cfg.StorageRoot = value
		case "file_name":
			if ValidFileName(value) {
				cfg.FileName = value
			}
		case "theme":
			if constants.ValidTheme(value) {
				cfg.Theme = Theme(value)
			}
		}
	}

	return cfg, nil
}

// ValidFileName reports whether name is usable as a bare note file name.
func ValidFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// Save writes the configuration to the given state directory.
func (c *Config) Save(stateDir string) error {
	configPath := filepath.Join(stateDir, constants.ConfigFileName)

	content := fmt.Sprintf(`# jot configuration

# Root directory holding the note file (absolute path).
# Leave empty to use your home directory.
storage_root: %s

# Name of the note file inside the storage root.
file_name: %s

# Color theme: auto, dark, or light
theme: %s
`, c.StorageRoot, c.FileName, c.Theme)

	return os.WriteFile(configPath, []byte(content), 0644)
}

// Exists checks if a configuration file exists in the given state directory.
func Exists(stateDir string) bool {
	configPath := filepath.Join(stateDir, constants.ConfigFileName)
	_, err := os.Stat(configPath)
	return err == nil
}

// ValidThemes returns all valid theme values.
func ValidThemes() []Theme {
	return []Theme{ThemeAuto, ThemeDark, ThemeLight}
}
