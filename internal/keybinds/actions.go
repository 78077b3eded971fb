package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active
	ContextGlobal    Context = "global"     // Available everywhere
	ContextMenu      Context = "menu"       // Main menu
	ContextTextInput Context = "text_input" // Any text entry step
	ContextList      Context = "list"       // Choose-a-profile lists
	ContextViewer    Context = "viewer"     // Read-only profile listing
	ContextConfirm   Context = "confirm"    // Delete confirmation
)

const (
	// Global actions
	ActionQuit      Action = "quit"       // Quit from the menu
	ActionQuitForce Action = "quit_force" // Quit from anywhere (ctrl+c)

	// Navigation actions
	ActionNavigateUp   Action = "navigate_up"   // Move cursor up one item
	ActionNavigateDown Action = "navigate_down" // Move cursor down one item
	ActionSelect       Action = "select"        // Activate the item under the cursor
	ActionBack         Action = "back"          // Return to the menu

	// Text input actions
	ActionTextSubmit    Action = "text_submit"    // Accept the field and advance
	ActionTextCancel    Action = "text_cancel"    // Abort the whole flow
	ActionTextBackspace Action = "text_backspace" // Drop the last character
	ActionTextPaste     Action = "text_paste"     // Paste from clipboard
	ActionTextClear     Action = "text_clear"     // Clear the current field

	// Confirmation actions
	ActionConfirm Action = "confirm" // Confirm (y)
	ActionCancel  Action = "cancel"  // Cancel (n)
)

// ActionInfo contains metadata about an action
type ActionInfo struct {
	Action      Action
	Description string
	Category    string
}

var actionInfos = map[Action]ActionInfo{
	ActionQuit:          {ActionQuit, "quit", "Global"},
	ActionQuitForce:     {ActionQuitForce, "force quit", "Global"},
	ActionNavigateUp:    {ActionNavigateUp, "up", "Navigation"},
	ActionNavigateDown:  {ActionNavigateDown, "down", "Navigation"},
	ActionSelect:        {ActionSelect, "select", "Navigation"},
	ActionBack:          {ActionBack, "back", "Navigation"},
	ActionTextSubmit:    {ActionTextSubmit, "next", "Text Input"},
	ActionTextCancel:    {ActionTextCancel, "cancel", "Text Input"},
	ActionTextBackspace: {ActionTextBackspace, "delete char", "Text Input"},
	ActionTextPaste:     {ActionTextPaste, "paste", "Text Input"},
	ActionTextClear:     {ActionTextClear, "clear field", "Text Input"},
	ActionConfirm:       {ActionConfirm, "yes", "Confirm"},
	ActionCancel:        {ActionCancel, "no", "Confirm"},
}

// GetActionInfo returns human-readable information about an action
func GetActionInfo(action Action) ActionInfo {
	if info, ok := actionInfos[action]; ok {
		return info
	}
	return ActionInfo{action, string(action), "Unknown"}
}

// IsKnownAction reports whether action is one lit understands
func IsKnownAction(action Action) bool {
	_, ok := actionInfos[action]
	return ok
}

// AllContexts lists every context in display order
func AllContexts() []Context {
	return []Context{
		ContextGlobal,
		ContextMenu,
		ContextTextInput,
		ContextList,
		ContextViewer,
		ContextConfirm,
	}
}

// IsKnownContext reports whether context is one lit understands
func IsKnownContext(context Context) bool {
	for _, c := range AllContexts() {
		if c == context {
			return true
		}
	}
	return false
}

// IsGlobalAction returns true if the action is available in all contexts
func IsGlobalAction(action Action) bool {
	return action == ActionQuitForce
}
