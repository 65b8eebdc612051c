// Package tui provides terminal user interface components for jot.
package tui

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/gl7857/jot/internal/config"
)

const (
	darkModeUnknown int32 = iota
	darkModeLight
	darkModeDark
)

var cachedDarkMode atomic.Int32

// DetectDarkMode returns whether the screen should use dark colors.
// It checks the theme config setting first:
//   - "light": always returns false (dark mode = off)
//   - "dark": always returns true (dark mode = on)
//   - "auto" or empty: uses lipgloss.HasDarkBackground() to auto-detect
//
// Auto-detection reads from the terminal, so this should be called BEFORE
// bubbletea starts.
func DetectDarkMode(theme config.Theme) bool {
	switch theme {
	case config.ThemeLight:
		return false
	case config.ThemeDark:
		return true
	default:
		if isDark, ok := cachedDarkModeValue(); ok {
			return isDark
		}
		isDark := lipgloss.HasDarkBackground()
		setCachedDarkMode(isDark)
		return isDark
	}
}

func cachedDarkModeValue() (bool, bool) {
	switch cachedDarkMode.Load() {
	case darkModeDark:
		return true, true
	case darkModeLight:
		return false, true
	default:
		return false, false
	}
}

func setCachedDarkMode(isDark bool) {
	if isDark {
		cachedDarkMode.Store(darkModeDark)
		return
	}
	cachedDarkMode.Store(darkModeLight)
}

// ThemeColors holds the semantic colors used by the screens.
type ThemeColors struct {
	Title         lipgloss.Color
	Accent        lipgloss.Color
	Text          lipgloss.Color
	TextDim       lipgloss.Color
	TextBright    lipgloss.Color
	Selection     lipgloss.Color
	StatusBar     lipgloss.Color
	StatusBarText lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Error         lipgloss.Color
	Border        lipgloss.Color
}

// NewThemeColors returns the color set for the given background.
func NewThemeColors(isDark bool) ThemeColors {
	if isDark {
		return ThemeColors{
			Title:         lipgloss.Color("39"),
			Accent:        lipgloss.Color("39"),
			Text:          lipgloss.Color("252"),
			TextDim:       lipgloss.Color("240"),
			TextBright:    lipgloss.Color("255"),
			Selection:     lipgloss.Color("24"),
			StatusBar:     lipgloss.Color("236"),
			StatusBarText: lipgloss.Color("250"),
			Success:       lipgloss.Color("40"),
			Warning:       lipgloss.Color("220"),
			Error:         lipgloss.Color("196"),
			Border:        lipgloss.Color("240"),
		}
	}
	return ThemeColors{
		Title:         lipgloss.Color("27"),
		Accent:        lipgloss.Color("27"),
		Text:          lipgloss.Color("235"),
		TextDim:       lipgloss.Color("245"),
		TextBright:    lipgloss.Color("16"),
		Selection:     lipgloss.Color("153"),
		StatusBar:     lipgloss.Color("252"),
		StatusBarText: lipgloss.Color("238"),
		Success:       lipgloss.Color("28"),
		Warning:       lipgloss.Color("130"),
		Error:         lipgloss.Color("160"),
		Border:        lipgloss.Color("250"),
	}
}
