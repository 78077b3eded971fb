package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerMenuBindings(r)
	registerTextInputBindings(r)
	registerListBindings(r)
	registerViewerBindings(r)
	registerConfirmBindings(r)

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerMenuBindings sets up the main menu
func registerMenuBindings(r *Registry) {
	r.RegisterMultiple(ContextMenu, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextMenu, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextMenu, "enter", ActionSelect)
	r.Register(ContextMenu, "q", ActionQuit)
}

// registerTextInputBindings sets up text entry. Printable keys are never
// bound here so they always reach the field.
func registerTextInputBindings(r *Registry) {
	r.Register(ContextTextInput, "enter", ActionTextSubmit)
	r.Register(ContextTextInput, "esc", ActionTextCancel)
	r.Register(ContextTextInput, "backspace", ActionTextBackspace)
	r.RegisterMultiple(ContextTextInput, []string{"ctrl+v", "shift+insert", "super+v"}, ActionTextPaste)
	r.Register(ContextTextInput, "ctrl+u", ActionTextClear)
}

// registerListBindings sets up the choose-delete, choose-switch and choose-update lists
func registerListBindings(r *Registry) {
	r.RegisterMultiple(ContextList, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextList, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextList, "enter", ActionSelect)
	r.RegisterMultiple(ContextList, []string{"b", "esc"}, ActionBack)
}

// registerViewerBindings sets up the read-only profile listing
func registerViewerBindings(r *Registry) {
	r.RegisterMultiple(ContextViewer, []string{"b", "esc"}, ActionBack)
}

// registerConfirmBindings sets up the delete confirmation
func registerConfirmBindings(r *Registry) {
	r.Register(ContextConfirm, "y", ActionConfirm)
	r.RegisterMultiple(ContextConfirm, []string{"n", "esc"}, ActionCancel)
}
