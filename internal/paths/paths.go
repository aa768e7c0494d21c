// Package paths resolves the filesystem locations moray stores its
// configuration, logs, and signature catalog in.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "moray"

// AppDataDir returns the application data directory for config/logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)
	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
// This is where application-managed data (like the signature catalog) lives.
//   - macOS: ~/Library/Application Support/moray
//   - Linux: $XDG_DATA_HOME/moray or ~/.local/share/moray
//   - Windows: %LOCALAPPDATA%\moray
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns the path to the user's config file.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".morayrc"), nil
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "moray.log")
}

// CatalogDBPath returns the default path to the signature catalog database.
func CatalogDBPath() string {
	return filepath.Join(AppLocalDataDir(), "catalog.db")
}
