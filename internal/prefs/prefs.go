// Package prefs reads optional AFK screen display preferences from
// ~/.config/afkscreen/prefs.toml. The file is never written.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds display preferences.
type Prefs struct {
	Theme  string `toml:"theme"`
	Reason string `toml:"reason"` // initial text of the away reason field
	Title  string `toml:"title"`  // terminal window title
}

const (
	defaultPrefsPath = "~/.config/afkscreen/prefs.toml"
	defaultTheme     = "Nightfox"
	defaultReason    = "Afk because of..."
	defaultTitle     = "AFK Screen"
)

// Defaults returns the preferences used when no file is present.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme, Reason: defaultReason, Title: defaultTitle}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path, falling back to defaults field by field.
// Any problem with the file yields the defaults.
func Load(path string) Prefs {
	defaults := Defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return defaults
	}
	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return defaults // Graceful degradation
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return defaults // Graceful degradation
	}

	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaults.Theme
	}
	if strings.TrimSpace(p.Reason) == "" {
		p.Reason = defaults.Reason
	}
	if strings.TrimSpace(p.Title) == "" {
		p.Title = defaults.Title
	}
	return p
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
