package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/studiowebux/lit/internal/keybinds"
)

// footerActions lists, per context, the actions shown in the help footer
var footerActions = map[keybinds.Context][]keybinds.Action{
	keybinds.ContextMenu: {
		keybinds.ActionNavigateUp,
		keybinds.ActionNavigateDown,
		keybinds.ActionSelect,
		keybinds.ActionQuit,
	},
	keybinds.ContextTextInput: {
		keybinds.ActionTextSubmit,
		keybinds.ActionTextCancel,
		keybinds.ActionTextBackspace,
		keybinds.ActionTextPaste,
		keybinds.ActionTextClear,
	},
	keybinds.ContextList: {
		keybinds.ActionNavigateUp,
		keybinds.ActionNavigateDown,
		keybinds.ActionSelect,
		keybinds.ActionBack,
	},
	keybinds.ContextViewer: {
		keybinds.ActionBack,
	},
	keybinds.ContextConfirm: {
		keybinds.ActionConfirm,
		keybinds.ActionCancel,
	},
}

// helpKeyMap adapts registry bindings to bubbles/help
type helpKeyMap struct {
	bindings []key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding {
	return k.bindings
}

func (k helpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.bindings}
}

// helpKeys builds the footer for context from whatever the registry binds,
// so user overrides show up. Unbound actions are left out.
func helpKeys(registry *keybinds.Registry, context keybinds.Context) helpKeyMap {
	actions := append([]keybinds.Action{}, footerActions[context]...)
	actions = append(actions, keybinds.ActionQuitForce)

	var km helpKeyMap
	for _, action := range actions {
		keys := registry.GetBinding(context, action)
		if len(keys) == 0 {
			continue
		}
		km.bindings = append(km.bindings, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(registry.GetBindingString(context, action), keybinds.GetActionInfo(action).Description),
		))
	}
	return km
}
