package keybinds

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "conflict", "invalid", "warning"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// HasWarnings returns true if there are any warnings
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// String returns a human-readable summary of validation results
func (r *ValidationResult) String() string {
	var sb strings.Builder

	if len(r.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("Errors (%d):\n", len(r.Errors)))
		for _, err := range r.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
		}
	}

	if len(r.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("Warnings (%d):\n", len(r.Warnings)))
		for _, warn := range r.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", warn.Error()))
		}
	}

	if !r.HasErrors() && !r.HasWarnings() {
		sb.WriteString("No issues found")
	}

	return sb.String()
}

// Validator validates keybinding configurations
type Validator struct {
	// reservedKeys maps keys that must keep their global action
	reservedKeys map[string]Action
}

// NewValidator creates a new keybinding validator
func NewValidator() *Validator {
	return &Validator{
		reservedKeys: map[string]Action{
			"ctrl+c": ActionQuitForce, // Force quit should always work
		},
	}
}

// ValidateRegistry validates an entire registry.
// Findings are sorted by context then key so output is stable.
func (v *Validator) ValidateRegistry(registry *Registry) *ValidationResult {
	result := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	for _, context := range sortedContexts(registry) {
		bindings := registry.bindings[context]
		keys := make([]string, 0, len(bindings))
		for key := range bindings {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			v.checkBinding(registry, context, key, bindings[key], result)
		}
	}

	return result
}

// ValidateConfig validates a configuration applied over the defaults
func (v *Validator) ValidateConfig(config *Config) *ValidationResult {
	registry := NewDefaultRegistry()
	ApplyConfig(registry, config)
	return v.ValidateRegistry(registry)
}

func (v *Validator) checkBinding(registry *Registry, context Context, key string, action Action, result *ValidationResult) {
	invalid := func(msg string) {
		result.Errors = append(result.Errors, ValidationError{Type: "invalid", Context: context, Key: key, Message: msg})
	}

	if !IsKnownContext(context) {
		invalid("unknown context")
		return
	}
	if err := ValidateKey(key); err != nil {
		invalid(err.Error())
		return
	}
	if !IsKnownAction(action) {
		invalid(fmt.Sprintf("unknown action '%s'", action))
		return
	}

	if reserved, ok := v.reservedKeys[key]; ok && action != reserved {
		result.Errors = append(result.Errors, ValidationError{
			Type:    "conflict",
			Context: context,
			Key:     key,
			Message: fmt.Sprintf("reserved key must stay bound to %s", reserved),
		})
		return
	}

	if context == ContextTextInput && IsPrintableKey(key) {
		invalid("printable keys cannot be bound while typing")
		return
	}

	if context != ContextGlobal {
		if globalAction, ok := registry.bindings[ContextGlobal][key]; ok && globalAction != action {
			result.Warnings = append(result.Warnings, ValidationError{
				Type:    "warning",
				Context: context,
				Key:     key,
				Message: fmt.Sprintf("shadows global binding (%s -> %s)", globalAction, action),
			})
		}
	}
}

func sortedContexts(registry *Registry) []Context {
	contexts := make([]Context, 0, len(registry.bindings))
	for context := range registry.bindings {
		contexts = append(contexts, context)
	}
	sort.Slice(contexts, func(i, j int) bool { return contexts[i] < contexts[j] })
	return contexts
}

// IsPrintableKey reports whether key is a single printable character
func IsPrintableKey(key string) bool {
	if utf8.RuneCountInString(key) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(key)
	return unicode.IsPrint(r)
}

// ValidateKey checks if a key string is valid
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	for _, mod := range []string{"ctrl+", "alt+", "shift+", "super+"} {
		if key == mod {
			return fmt.Errorf("modifier without key: %s", key)
		}
	}

	return nil
}
