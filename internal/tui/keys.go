package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/lit/internal/input"
	"github.com/studiowebux/lit/internal/keybinds"
	"github.com/studiowebux/lit/internal/logging"
)

// handleKeyPress routes one key through the debouncer into the machine
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	key := toKey(msg)

	if m.machine.IsQuit(m.session, key) {
		logging.Debugf("quit from %s", m.session.Mode)
		m.quitting = true
		return tea.Quit
	}

	// Typing into a field is never debounced; every other key is
	if !m.isTyping(key) && !m.debounce.Accept(m.now()) {
		logging.Debugf("dropped key %q within %s", key.Name, m.debounce.Window())
		return nil
	}

	before := m.session.Mode
	session, err := m.machine.Handle(m.ctx, m.session, key)
	m.session = session
	if err != nil {
		logging.Warnf("%v", err)
	}
	if session.Mode != before {
		logging.Debugf("mode %s -> %s", before, session.Mode)
	}

	return nil
}

// isTyping reports whether key is text entered into the current field
func (m *Model) isTyping(key input.Key) bool {
	if !m.session.Mode.IsTextEntry() {
		return false
	}
	if key.Text != "" {
		return true
	}
	if m.machine.Keys().HasBinding(keybinds.ContextTextInput, key.Name) {
		return false
	}
	return keybinds.IsPrintableKey(key.Name)
}

// toKey converts a Bubble Tea key message to the binding notation.
// Pasted or coalesced runes are carried as text.
func toKey(msg tea.KeyMsg) input.Key {
	if msg.Type == tea.KeyRunes && !msg.Alt && (msg.Paste || len(msg.Runes) > 1) {
		return input.Key{Text: string(msg.Runes)}
	}
	return input.KeyOf(msg.String())
}
