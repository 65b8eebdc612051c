// Package app provides the main application context and dependency wiring.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gl7857/jot/internal/config"
	"github.com/gl7857/jot/internal/constants"
	"github.com/gl7857/jot/internal/storage"
)

// App represents the main application context with resolved paths.
type App struct {
	// StateDir holds config, log, grant marker, input history and journal.
	StateDir string

	// State
	Config *config.Config

	// Runtime
	Debug bool // Debug mode enabled
}

// New creates a new App instance with the state directory resolved.
func New() (*App, error) {
	stateDir, err := resolveStateDir()
	if err != nil {
		return nil, err
	}

	// Check if debug mode is enabled
	debug := os.Getenv(constants.EnvDebug) == "1"

	return &App{
		StateDir: stateDir,
		Debug:    debug,
	}, nil
}

// resolveStateDir picks the state directory: JOT_HOME when set, else the
// platform config dir, else a dot directory in the user's home.
func resolveStateDir() (string, error) {
	if dir := os.Getenv(constants.EnvHome); dir != "" {
		return dir, nil
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, constants.StateDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve state directory: %w", err)
	}
	return filepath.Join(home, constants.FallbackStateDirName), nil
}

// Initialize creates the state directory.
func (a *App) Initialize() error {
	if err := os.MkdirAll(a.StateDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", a.StateDir, err)
	}
	return nil
}

// LoadConfig loads the configuration from the state directory.
func (a *App) LoadConfig() error {
	cfg, err := config.Load(a.StateDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.Config = cfg
	return nil
}

// IsInitialized checks if the state directory exists.
func (a *App) IsInitialized() bool {
	_, err := os.Stat(a.StateDir)
	return err == nil
}

// HasConfig checks if a configuration file exists.
func (a *App) HasConfig() bool {
	return config.Exists(a.StateDir)
}

// GetConfigPath returns the path to the configuration file.
func (a *App) GetConfigPath() string {
	return filepath.Join(a.StateDir, constants.ConfigFileName)
}

// GetLogPath returns the path to the unified log file.
func (a *App) GetLogPath() string {
	return filepath.Join(a.StateDir, constants.LogFileName)
}

// GetGrantPath returns the path to the storage grant marker.
func (a *App) GetGrantPath() string {
	return filepath.Join(a.StateDir, constants.GrantFileName)
}

// GetJournalPath returns the path to the operation journal database.
func (a *App) GetJournalPath() string {
	return filepath.Join(a.StateDir, constants.JournalFileName)
}

// StorageRoot returns the directory holding the note file.
// Precedence: JOT_STORAGE_ROOT, then config, then the user's home.
func (a *App) StorageRoot() string {
	if root := os.Getenv(constants.EnvStorageRoot); root != "" {
		return root
	}
	if a.Config != nil && a.Config.StorageRoot != "" {
		return a.Config.StorageRoot
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// NoteFileName returns the configured note file name.
func (a *App) NoteFileName() string {
	if a.Config != nil && a.Config.FileName != "" {
		return a.Config.FileName
	}
	return constants.DefaultNoteFileName
}

// NewStore creates the storage handle for the configured note file.
func (a *App) NewStore() *storage.Store {
	return storage.New(a.StorageRoot(), a.NoteFileName())
}
