package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/studiowebux/lit/internal/keybinds"
)

// KeybindsOptions configures Keybinds
type KeybindsOptions struct {
	Format   string
	Defaults bool // print the default keybinds.json instead of the effective bindings
}

// Keybinds prints the effective key bindings of the interactive menu
func (a *App) Keybinds(registry *keybinds.Registry, opts KeybindsOptions) error {
	if opts.Defaults {
		if opts.Format == "" || opts.Format == FormatText {
			opts.Format = FormatJSON
		}
		if err := ValidateFormat(opts.Format); err != nil {
			return err
		}
		return a.printData(keybinds.ExportDefaults(), opts.Format, "")
	}

	if opts.Format == "" {
		opts.Format = FormatText
	}
	if err := ValidateFormat(opts.Format); err != nil {
		return err
	}

	var bindings []keybinds.Binding
	for _, context := range keybinds.AllContexts() {
		for _, b := range registry.ListBindings(context) {
			if b.Context == context {
				bindings = append(bindings, b)
			}
		}
	}

	if opts.Format != FormatText {
		rows := make([]map[string]string, 0, len(bindings))
		for _, b := range bindings {
			rows = append(rows, map[string]string{
				"context": string(b.Context),
				"key":     b.Key,
				"action":  string(b.Action),
			})
		}
		return a.printData(rows, opts.Format, "")
	}

	w := tabwriter.NewWriter(a.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CONTEXT\tKEY\tACTION\tDESCRIPTION")
	for _, b := range bindings {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.Context, b.Key, b.Action, keybinds.GetActionInfo(b.Action).Description)
	}
	return w.Flush()
}
