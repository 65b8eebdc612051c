// Package constants defines shared constants used throughout the jot application.
package constants

import "time"

// Directory and file names
const (
	StateDirName         = "jot"
	FallbackStateDirName = ".jot"
	ConfigFileName       = "config"
	LogFileName          = "jot.log"
	GrantFileName        = "storage.grant"
	InputHistoryFileName = "input_history.json"
	JournalFileName      = "journal.db"
	DefaultNoteFileName  = "jot.txt"
)

// Environment variables
const (
	EnvHome        = "JOT_HOME"
	EnvStorageRoot = "JOT_STORAGE_ROOT"
	EnvDebug       = "JOT_DEBUG"
)

// Grant record contents
const (
	GrantGranted = "granted"
	GrantDenied  = "denied"
)

// Journal operation names
const (
	OpAppend = "append"
	OpClear  = "clear"
)

// Input history settings
const (
	MaxInputHistoryEntries = 100
)

// Screen timings
const (
	StatusMessageTimeout   = 3 * time.Second
	ContentRefreshInterval = 2 * time.Second
	DoublePressIntervalSec = 2 // Seconds to wait for second keypress
)

// Display limits
const (
	MaxStatusPathLen = 48
)

// ValidTheme reports whether name is an accepted theme setting.
func ValidTheme(name string) bool {
	switch name {
	case "auto", "dark", "light":
		return true
	}
	return false
}
