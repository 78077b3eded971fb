package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// LocalStoreFile is a per-directory profile store that takes precedence over the global one
	LocalStoreFile = ".lit.json"
)

var (
	// ConfigDir is the global configuration directory (~/.lit)
	ConfigDir string

	// SettingsFile is the YAML settings file
	SettingsFile string

	// StoreFile is the profile store
	StoreFile string

	// HistoryDatabase is the SQLite database holding the switch history
	HistoryDatabase string

	// KeybindsFile holds user keybinding overrides
	KeybindsFile string

	// LogFile receives log output while the TUI owns the terminal
	LogFile string
)

// Initialize sets up the configuration directory and path globals.
// LIT_CONFIG_DIR overrides the default ~/.lit location.
func Initialize() error {
	dir := os.Getenv("LIT_CONFIG_DIR")
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".lit")
	}

	SetConfigDir(dir)

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	return nil
}

// SetConfigDir points every path global at dir without touching the filesystem
func SetConfigDir(dir string) {
	ConfigDir = dir
	SettingsFile = filepath.Join(dir, "config.yaml")
	StoreFile = filepath.Join(dir, "profiles.json")
	HistoryDatabase = filepath.Join(dir, "history.db")
	KeybindsFile = filepath.Join(dir, "keybinds.json")
	LogFile = filepath.Join(dir, "lit.log")
}

// GetStoreFilePath returns the profile store path.
// Precedence: explicit override, local .lit.json, global store.
func GetStoreFilePath(override string) string {
	if override != "" {
		return expandHome(override)
	}
	if _, err := os.Stat(LocalStoreFile); err == nil {
		return LocalStoreFile
	}
	return StoreFile
}

// expandHome expands a leading ~/ to the user's home directory
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
