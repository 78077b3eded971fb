package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrConfigNotFound is returned by readSettings when the settings file does not exist.
// Load maps it to the defaults.
var ErrConfigNotFound = errors.New("configuration file not found")

// Settings holds the user-tunable behavior of lit
type Settings struct {
	Store    StoreSettings    `mapstructure:"store"`
	History  HistorySettings  `mapstructure:"history"`
	Input    InputSettings    `mapstructure:"input"`
	Git      GitSettings      `mapstructure:"git"`
	Log      LogSettings      `mapstructure:"log"`
	Keybinds KeybindsSettings `mapstructure:"keybinds"`
}

// StoreSettings locates the profile store
type StoreSettings struct {
	File string `mapstructure:"file"`
}

// HistorySettings controls the switch history database
type HistorySettings struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

// InputSettings tunes the interactive event loop
type InputSettings struct {
	Debounce     time.Duration `mapstructure:"debounce"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// GitSettings configures how profiles are applied
type GitSettings struct {
	Binary  string        `mapstructure:"binary"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LogSettings configures the logger
type LogSettings struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// KeybindsSettings locates user keybinding overrides
type KeybindsSettings struct {
	File string `mapstructure:"file"`
}

// DefaultSettings returns settings with default values
func DefaultSettings() *Settings {
	return &Settings{
		Store: StoreSettings{
			File: "",
		},
		History: HistorySettings{
			Enabled: true,
			File:    HistoryDatabase,
		},
		Input: InputSettings{
			Debounce:     200 * time.Millisecond,
			PollInterval: 100 * time.Millisecond,
		},
		Git: GitSettings{
			Binary:  "git",
			Timeout: 5 * time.Second,
		},
		Log: LogSettings{
			Level: "info",
			File:  LogFile,
		},
		Keybinds: KeybindsSettings{
			File: KeybindsFile,
		},
	}
}

// Load reads settings from path (SettingsFile when empty).
// A missing file is not an error: defaults plus LIT_* environment overrides are returned.
func Load(path string) (*Settings, error) {
	if path == "" {
		path = SettingsFile
	}

	settings, err := readSettings(path)
	if errors.Is(err, ErrConfigNotFound) {
		return readSettings("")
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

// readSettings builds a viper instance seeded with defaults and reads path into it.
// An empty path skips the file and only applies defaults and environment.
func readSettings(path string) (*Settings, error) {
	defaults := DefaultSettings()

	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("store.file", defaults.Store.File)
	v.SetDefault("history.enabled", defaults.History.Enabled)
	v.SetDefault("history.file", defaults.History.File)
	v.SetDefault("input.debounce", defaults.Input.Debounce)
	v.SetDefault("input.poll_interval", defaults.Input.PollInterval)
	v.SetDefault("git.binary", defaults.Git.Binary)
	v.SetDefault("git.timeout", defaults.Git.Timeout)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("keybinds.file", defaults.Keybinds.File)

	// Each key is bound to LIT_<SECTION>_<KEY> (LIT_GIT_BINARY, LIT_HISTORY_ENABLED, ...).
	// AutomaticEnv is not used: with it a variable named after a section,
	// such as LIT_GIT, shadows the whole section.
	v.SetEnvPrefix("LIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range v.AllKeys() {
		_ = v.BindEnv(key)
	}
	_ = v.BindEnv("input.debounce", "LIT_DEBOUNCE")

	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}

		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var vfnfError viper.ConfigFileNotFoundError
			if errors.As(err, &vfnfError) {
				return nil, ErrConfigNotFound
			}
			return nil, fmt.Errorf("failed to read config file content: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if settings.Input.Debounce < 0 {
		return nil, fmt.Errorf("input.debounce must not be negative, got %s", settings.Input.Debounce)
	}
	if settings.Input.PollInterval <= 0 {
		settings.Input.PollInterval = defaults.Input.PollInterval
	}
	if settings.Git.Timeout <= 0 {
		settings.Git.Timeout = defaults.Git.Timeout
	}
	if settings.Git.Binary == "" {
		settings.Git.Binary = defaults.Git.Binary
	}

	return settings, nil
}
