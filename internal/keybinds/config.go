package keybinds

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/studiowebux/lit/internal/logging"
	"github.com/tidwall/jsonc"
)

// Unbind as an action removes the key from the context
const Unbind = "none"

// Config represents the user's keybinding configuration.
// Each section maps key -> action.
type Config struct {
	Version   string                       `json:"version,omitempty"`
	Global    map[string]string            `json:"global,omitempty"`
	Menu      map[string]string            `json:"menu,omitempty"`
	TextInput map[string]string            `json:"text_input,omitempty"`
	List      map[string]string            `json:"list,omitempty"`
	Viewer    map[string]string            `json:"viewer,omitempty"`
	Confirm   map[string]string            `json:"confirm,omitempty"`
	Custom    map[string]map[string]string `json:"custom,omitempty"`
}

// sections maps config sections to contexts
func (c *Config) sections() map[Context]map[string]string {
	sections := map[Context]map[string]string{
		ContextGlobal:    c.Global,
		ContextMenu:      c.Menu,
		ContextTextInput: c.TextInput,
		ContextList:      c.List,
		ContextViewer:    c.Viewer,
		ContextConfirm:   c.Confirm,
	}
	for name, bindings := range c.Custom {
		sections[Context(name)] = bindings
	}
	return sections
}

// LoadConfig loads keybinding configuration from a JSON file.
// Comments and trailing commas are allowed.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(jsonc.ToJSON(data), &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// ApplyConfig applies user configuration to a registry.
// User bindings override default bindings.
func ApplyConfig(registry *Registry, config *Config) {
	for context, bindings := range config.sections() {
		for key, actionStr := range bindings {
			if actionStr == Unbind {
				registry.Unregister(context, key)
				continue
			}
			registry.Register(context, key, Action(actionStr))
		}
	}
}

// Load builds the default registry with the user file at path applied.
// A missing file yields the defaults; an unreadable or invalid one is an error.
func Load(path string) (*Registry, *ValidationResult, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return registry, &ValidationResult{}, nil
	}

	config, err := LoadConfig(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load keybinds.json: %w", err)
	}

	ApplyConfig(registry, config)

	result := NewValidator().ValidateRegistry(registry)
	if result.HasErrors() {
		return nil, result, fmt.Errorf("invalid keybindings in %s:\n%s", path, result.String())
	}

	return registry, result, nil
}

// LoadOrDefault loads user config if it is valid, otherwise logs why and
// returns the default registry
func LoadOrDefault(path string) *Registry {
	registry, result, err := Load(path)
	if err != nil {
		logging.Warnf("using default keybindings: %v", err)
		return NewDefaultRegistry()
	}

	for _, warn := range result.Warnings {
		logging.Warnf("keybinds: %s", warn.Error())
	}

	return registry
}

// ExportDefaults exports the default keybindings as a config
func ExportDefaults() *Config {
	registry := NewDefaultRegistry()
	config := &Config{Version: "1.0"}

	for context, bindings := range registry.bindings {
		section := make(map[string]string, len(bindings))
		for key, action := range bindings {
			section[key] = string(action)
		}

		switch context {
		case ContextGlobal:
			config.Global = section
		case ContextMenu:
			config.Menu = section
		case ContextTextInput:
			config.TextInput = section
		case ContextList:
			config.List = section
		case ContextViewer:
			config.Viewer = section
		case ContextConfirm:
			config.Confirm = section
		}
	}

	return config
}
