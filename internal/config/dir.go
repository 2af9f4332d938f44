// Package config provides the global configuration for habits.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the habits configuration directory.
//
// Resolution:
//   - $HABITS_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/habits if set (respects XDG on any platform)
//   - %AppData%/habits on Windows
//   - ~/.config/habits on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("HABITS_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "habits")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "habits")
		}
	}

	// macOS and Linux: ~/.config/habits
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "habits")
}
