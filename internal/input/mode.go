package input

import "github.com/studiowebux/lit/internal/keybinds"

// Mode is the current step of an interactive flow
type Mode int

const (
	ModeMenu Mode = iota
	ModeEnterName
	ModeEnterUserName
	ModeEnterUserEmail
	ModeListProfiles
	ModeChooseDelete
	ModeConfirmDelete
	ModeChooseSwitch
	ModeChooseUpdate
	ModeEnterUpdateUserName
	ModeEnterUpdateUserEmail
)

var modeNames = [...]string{
	ModeMenu:                 "menu",
	ModeEnterName:            "enter_name",
	ModeEnterUserName:        "enter_user_name",
	ModeEnterUserEmail:       "enter_user_email",
	ModeListProfiles:         "list_profiles",
	ModeChooseDelete:         "choose_delete",
	ModeConfirmDelete:        "confirm_delete",
	ModeChooseSwitch:         "choose_switch",
	ModeChooseUpdate:         "choose_update",
	ModeEnterUpdateUserName:  "enter_update_user_name",
	ModeEnterUpdateUserEmail: "enter_update_user_email",
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "unknown"
	}
	return modeNames[m]
}

// Context returns the keybinding context the mode reads keys from
func (m Mode) Context() keybinds.Context {
	switch m {
	case ModeMenu:
		return keybinds.ContextMenu
	case ModeEnterName, ModeEnterUserName, ModeEnterUserEmail,
		ModeEnterUpdateUserName, ModeEnterUpdateUserEmail:
		return keybinds.ContextTextInput
	case ModeChooseDelete, ModeChooseSwitch, ModeChooseUpdate:
		return keybinds.ContextList
	case ModeListProfiles:
		return keybinds.ContextViewer
	case ModeConfirmDelete:
		return keybinds.ContextConfirm
	}
	return keybinds.ContextGlobal
}

// IsTextEntry reports whether printable keys are typed into a field
func (m Mode) IsTextEntry() bool {
	return m.Context() == keybinds.ContextTextInput
}

// Menu options in cursor order
const (
	MenuAdd = iota
	MenuSwitch
	MenuUpdate
	MenuDelete
	MenuList
)

// MenuOptions are the labels of the main menu, indexed by the Menu* constants
var MenuOptions = []string{
	MenuAdd:    "Add profile",
	MenuSwitch: "Switch profile",
	MenuUpdate: "Update profile",
	MenuDelete: "Delete profile",
	MenuList:   "List profiles",
}
