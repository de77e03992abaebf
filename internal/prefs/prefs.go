// Package prefs handles memoria-tui user preferences persistence.
// Preferences are stored in ~/.config/memoria-tui/prefs.toml.
package prefs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for memoria-tui.
type Prefs struct {
	Theme string `toml:"theme"`
	View  string `toml:"view"` // startup view: list, search, or gallery
}

const (
	defaultPrefsPath = "~/.config/memoria-tui/prefs.toml"
	defaultTheme     = "Dusk"
	defaultView      = "list"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if
// missing or unreadable. It never fails: preferences are a convenience, not
// a requirement.
func Load(path string) Prefs {
	prefs := Prefs{Theme: defaultTheme, View: defaultView}

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}

	file, err := os.Open(resolved)
	if err != nil {
		// Missing or unreadable prefs degrade to defaults.
		return prefs
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return prefs
	}

	if err := toml.Unmarshal(bytes, &prefs); err != nil {
		return Prefs{Theme: defaultTheme, View: defaultView}
	}

	if strings.TrimSpace(prefs.Theme) == "" {
		prefs.Theme = defaultTheme
	}
	switch strings.TrimSpace(prefs.View) {
	case "list", "search", "gallery":
	default:
		prefs.View = defaultView
	}

	return prefs
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
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
