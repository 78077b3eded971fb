package input

import "fmt"

// Status is the last message shown to the user
type Status struct {
	Message string
	IsError bool
}

// Session is everything the interactive loop carries between key events.
// It is passed by value; Handle returns the updated copy.
type Session struct {
	Mode  Mode
	Draft Draft

	Menu   Cursor
	Delete Cursor
	Switch Cursor
	Update Cursor

	// Pending is the profile chosen for delete or update
	Pending string

	Status Status
}

// NewSession starts at the menu
func NewSession() Session {
	return Session{
		Mode: ModeMenu,
		Menu: NewCursor(MenuOptions),
	}
}

// ListCursor returns the cursor owned by a list mode
func (s Session) ListCursor() (Cursor, bool) {
	switch s.Mode {
	case ModeChooseDelete:
		return s.Delete, true
	case ModeChooseSwitch:
		return s.Switch, true
	case ModeChooseUpdate:
		return s.Update, true
	case ModeMenu:
		return s.Menu, true
	}
	return Cursor{}, false
}

// cursor returns a pointer to the cursor owned by mode
func (s *Session) cursor(mode Mode) *Cursor {
	switch mode {
	case ModeChooseDelete:
		return &s.Delete
	case ModeChooseSwitch:
		return &s.Switch
	case ModeChooseUpdate:
		return &s.Update
	case ModeMenu:
		return &s.Menu
	}
	return nil
}

// ActiveField returns the draft buffer a text mode edits
func (s Session) ActiveField() (Field, bool) {
	switch s.Mode {
	case ModeEnterName:
		return FieldName, true
	case ModeEnterUserName, ModeEnterUpdateUserName:
		return FieldUserName, true
	case ModeEnterUserEmail, ModeEnterUpdateUserEmail:
		return FieldUserEmail, true
	}
	return 0, false
}

func (s *Session) info(format string, args ...any) {
	s.Status = Status{Message: fmt.Sprintf(format, args...)}
}

func (s *Session) fail(err error) {
	s.Status = Status{Message: err.Error(), IsError: true}
}
