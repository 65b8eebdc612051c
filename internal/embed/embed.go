// Package embed provides embedded assets for jot.
package embed

import (
	"embed"
)

//go:embed assets/*

// Assets contains all embedded files for jot.
var Assets embed.FS

// GetCredits returns the credits content.
func GetCredits() (string, error) {
	data, err := Assets.ReadFile("assets/CREDITS.md")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
