package input

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/studiowebux/lit/internal/keybinds"
	"github.com/studiowebux/lit/internal/logging"
	"github.com/studiowebux/lit/internal/types"
)

// Store is the part of the profile store the machine mutates
type Store interface {
	Names() []string
	Has(name string) bool
	Add(name, userName, userEmail string) error
	Update(name, userName, userEmail string) error
	Remove(name string) error
}

// Switcher applies a profile and marks it active
type Switcher interface {
	Switch(ctx context.Context, name string, source types.SwitchSource) (types.Profile, error)
}

// Key is one key event. Name uses the keybinding notation ("enter",
// "ctrl+v", "a"). Text carries bracketed-paste content.
type Key struct {
	Name string
	Text string
}

// KeyOf builds a Key from its binding name
func KeyOf(name string) Key {
	return Key{Name: name}
}

// textStep describes one text-entry mode
type textStep struct {
	field  Field
	submit func(m *Machine, s Session) (Session, error)
}

// Machine dispatches key events over a Session
type Machine struct {
	store     Store
	switcher  Switcher
	keys      *keybinds.Registry
	readPaste func() (string, error)
	steps     map[Mode]textStep
}

// NewMachine creates a machine. A nil registry uses the default keybindings.
func NewMachine(store Store, switcher Switcher, keys *keybinds.Registry) *Machine {
	if keys == nil {
		keys = keybinds.NewDefaultRegistry()
	}
	m := &Machine{
		store:     store,
		switcher:  switcher,
		keys:      keys,
		readPaste: clipboard.ReadAll,
	}
	m.steps = map[Mode]textStep{
		ModeEnterName:            {FieldName, advanceTo(ModeEnterUserName)},
		ModeEnterUserName:        {FieldUserName, advanceTo(ModeEnterUserEmail)},
		ModeEnterUserEmail:       {FieldUserEmail, (*Machine).commitAdd},
		ModeEnterUpdateUserName:  {FieldUserName, advanceTo(ModeEnterUpdateUserEmail)},
		ModeEnterUpdateUserEmail: {FieldUserEmail, (*Machine).commitUpdate},
	}
	return m
}

// SetClipboardReader replaces the clipboard used by paste
func (m *Machine) SetClipboardReader(read func() (string, error)) {
	m.readPaste = read
}

// Keys returns the registry the machine dispatches through
func (m *Machine) Keys() *keybinds.Registry {
	return m.keys
}

// IsQuit reports whether key ends the interactive session in the current mode.
// Quitting is left to the caller; Handle treats these keys as no-ops.
func (m *Machine) IsQuit(s Session, key Key) bool {
	if key.Text != "" {
		return false
	}
	action, ok := m.keys.Match(s.Mode.Context(), key.Name)
	if !ok {
		return false
	}
	return action == keybinds.ActionQuitForce || (action == keybinds.ActionQuit && s.Mode == ModeMenu)
}

// Handle applies one key event to s and returns the new session.
// Unknown keys leave the session unchanged. Store and apply failures are
// returned together with the new session and recorded in its Status.
func (m *Machine) Handle(ctx context.Context, s Session, key Key) (Session, error) {
	if step, ok := m.steps[s.Mode]; ok {
		return m.handleText(s, step, key)
	}

	action, ok := m.keys.Match(s.Mode.Context(), key.Name)
	if !ok || key.Text != "" {
		return s, nil
	}

	switch s.Mode {
	case ModeMenu:
		return m.handleMenu(s, action), nil
	case ModeListProfiles:
		if action == keybinds.ActionBack {
			return m.toMenu(s), nil
		}
	case ModeChooseDelete, ModeChooseSwitch, ModeChooseUpdate:
		return m.handleList(ctx, s, action)
	case ModeConfirmDelete:
		return m.handleConfirm(s, action)
	}

	return s, nil
}

func (m *Machine) handleMenu(s Session, action keybinds.Action) Session {
	switch action {
	case keybinds.ActionNavigateUp:
		s.Menu.MoveUp()
	case keybinds.ActionNavigateDown:
		s.Menu.MoveDown()
	case keybinds.ActionSelect:
		switch s.Menu.Index() {
		case MenuAdd:
			s.Draft.Clear()
			s.Mode = ModeEnterName
		case MenuSwitch:
			s = m.enterList(s, ModeChooseSwitch)
		case MenuUpdate:
			s = m.enterList(s, ModeChooseUpdate)
		case MenuDelete:
			s = m.enterList(s, ModeChooseDelete)
		case MenuList:
			s.Mode = ModeListProfiles
		}
	}
	return s
}

func (m *Machine) handleList(ctx context.Context, s Session, action keybinds.Action) (Session, error) {
	cursor := s.cursor(s.Mode)

	switch action {
	case keybinds.ActionNavigateUp:
		cursor.MoveUp()
	case keybinds.ActionNavigateDown:
		cursor.MoveDown()
	case keybinds.ActionBack:
		return m.toMenu(s), nil
	case keybinds.ActionSelect:
		name, ok := cursor.Selected()
		if !ok {
			return s, nil
		}
		switch s.Mode {
		case ModeChooseDelete:
			s.Pending = name
			s.Mode = ModeConfirmDelete
		case ModeChooseUpdate:
			s.Pending = name
			s.Draft.Clear()
			s.Mode = ModeEnterUpdateUserName
		case ModeChooseSwitch:
			return m.commitSwitch(ctx, s, name)
		}
	}

	return s, nil
}

func (m *Machine) handleConfirm(s Session, action keybinds.Action) (Session, error) {
	switch action {
	case keybinds.ActionConfirm:
		name := s.Pending
		err := m.store.Remove(name)
		s = m.toMenu(s)
		if err != nil {
			err = fmt.Errorf("deleted profile %s but failed to save: %w", name, err)
			s.fail(err)
			return s, err
		}
		s.info("Deleted profile %s", name)
	case keybinds.ActionCancel:
		s = m.toMenu(s)
	}
	return s, nil
}

func (m *Machine) handleText(s Session, step textStep, key Key) (Session, error) {
	if key.Text != "" {
		s.Draft.Append(step.field, key.Text)
		return s, nil
	}

	action, ok := m.keys.Match(keybinds.ContextTextInput, key.Name)
	if !ok {
		if keybinds.IsPrintableKey(key.Name) {
			s.Draft.Append(step.field, key.Name)
		}
		return s, nil
	}

	switch action {
	case keybinds.ActionTextBackspace:
		s.Draft.Backspace(step.field)
	case keybinds.ActionTextClear:
		s.Draft.Set(step.field, "")
	case keybinds.ActionTextPaste:
		text, err := m.readPaste()
		if err != nil {
			err = fmt.Errorf("failed to read clipboard: %w", err)
			s.fail(err)
			return s, err
		}
		s.Draft.Append(step.field, text)
	case keybinds.ActionTextCancel:
		return m.toMenu(s), nil
	case keybinds.ActionTextSubmit:
		if strings.TrimSpace(s.Draft.Get(step.field)) == "" {
			return s, nil
		}
		return step.submit(m, s)
	}

	return s, nil
}

func advanceTo(next Mode) func(*Machine, Session) (Session, error) {
	return func(_ *Machine, s Session) (Session, error) {
		s.Mode = next
		return s, nil
	}
}

func (m *Machine) commitAdd(s Session) (Session, error) {
	draft := s.Draft
	err := m.store.Add(draft.Name, draft.UserName, draft.UserEmail)
	s = m.toMenu(s)
	if err != nil {
		err = fmt.Errorf("failed to add profile %s: %w", draft.Name, err)
		s.fail(err)
		return s, err
	}
	logging.Debugf("added profile %s", draft.Name)
	s.info("Added profile %s", draft.Name)
	return s, nil
}

func (m *Machine) commitUpdate(s Session) (Session, error) {
	name, draft := s.Pending, s.Draft
	err := m.store.Update(name, draft.UserName, draft.UserEmail)
	s = m.toMenu(s)
	if err != nil {
		err = fmt.Errorf("failed to update profile %s: %w", name, err)
		s.fail(err)
		return s, err
	}
	logging.Debugf("updated profile %s", name)
	s.info("Updated profile %s", name)
	return s, nil
}

func (m *Machine) commitSwitch(ctx context.Context, s Session, name string) (Session, error) {
	if !m.store.Has(name) {
		return s, nil
	}

	p, err := m.switcher.Switch(ctx, name, types.SourceTUI)
	s = m.toMenu(s)
	if err != nil {
		s.fail(err)
		return s, err
	}
	s.info("Switched to %s (%s <%s>)", p.Name, p.UserName, p.UserEmail)
	return s, nil
}

// enterList moves to a list mode with a freshly seeded cursor
func (m *Machine) enterList(s Session, mode Mode) Session {
	s.Mode = mode
	s.cursor(mode).Reset(m.store.Names())
	return s
}

// toMenu returns to the menu, dropping any unfinished flow
func (m *Machine) toMenu(s Session) Session {
	s.Mode = ModeMenu
	s.Draft.Clear()
	s.Pending = ""
	s.Menu.Reset(MenuOptions)
	return s
}
