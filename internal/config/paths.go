// ABOUTME: Standard filesystem paths for pdfview configuration and state
// ABOUTME: Resolves ~/.pdfview/ for config, preferences, and the log file

package config

import (
	"os"
	"path/filepath"
)

const globalDirName = ".pdfview"

// GlobalDir returns the user-global config directory (~/.pdfview/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ConfigFile returns the path to the YAML config file.
func ConfigFile() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// DefaultPrefsPath returns the default preference store location for a backend.
// The memory backend has no file and yields "".
func DefaultPrefsPath(backend string) string {
	switch backend {
	case PrefsSQLite:
		return filepath.Join(GlobalDir(), "prefs.db")
	case PrefsFile:
		return filepath.Join(GlobalDir(), "prefs.yaml")
	default:
		return ""
	}
}

// LogFile returns the default log file used while the TUI owns the terminal.
func LogFile() string {
	return filepath.Join(GlobalDir(), "pdfview.log")
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
