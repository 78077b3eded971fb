package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/studiowebux/lit/internal/filter"
	"github.com/studiowebux/lit/internal/profiles"
	"github.com/studiowebux/lit/internal/types"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrNotInteractive is returned when input is needed but stdin is not a terminal
var ErrNotInteractive = errors.New("stdin is not a terminal")

// HistoryStore is the read side of the switch history
type HistoryStore interface {
	List(limit int) ([]types.SwitchEvent, error)
	ListForProfile(profileName string, limit int) ([]types.SwitchEvent, error)
	Stats() ([]types.ProfileStats, error)
	GetCount() (int, error)
	Clear() error
}

// IdentityReader reads the identity git currently uses
type IdentityReader interface {
	Read(ctx context.Context) (string, string, error)
}

// PickFunc lets the user choose one profile; an empty result means cancelled
type PickFunc func(title string, listings []types.ProfileListing) (string, error)

// App runs the non-interactive commands against one profile store
type App struct {
	Store     *profiles.Store
	Switcher  *profiles.Switcher
	HistoryDB HistoryStore   // nil when history is disabled
	Git       IdentityReader // nil skips the git check in Current

	Out io.Writer
	Err io.Writer

	// Interactive is true when stdin is a terminal, enabling prompts and the picker
	Interactive bool
	// Color is true when stdout is a terminal, enabling highlighted JSON
	Color bool

	in   *bufio.Reader
	pick PickFunc
}

// New creates an App reading prompts from in
func New(store *profiles.Store, switcher *profiles.Switcher, in io.Reader, out, errOut io.Writer) *App {
	return &App{
		Store:    store,
		Switcher: switcher,
		Out:      out,
		Err:      errOut,
		in:       bufio.NewReader(in),
		pick:     pickProfile,
	}
}

// SetPicker replaces the interactive profile picker
func (a *App) SetPicker(pick PickFunc) {
	a.pick = pick
}

// prompt asks for one line of input; empty answers are rejected
func (a *App) prompt(label string) (string, error) {
	if !a.Interactive {
		return "", fmt.Errorf("%s is required: %w", strings.ToLower(label), ErrNotInteractive)
	}

	fmt.Fprintf(a.Err, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}

	value := strings.TrimSpace(line)
	if value == "" {
		return "", fmt.Errorf("%s must not be empty: %w", strings.ToLower(label), profiles.ErrEmptyField)
	}
	return value, nil
}

// printData writes data as json or yaml after applying an optional JMESPath query
func (a *App) printData(data any, format, query string) error {
	switch format {
	case FormatJSON:
		if query != "" {
			out, err := filter.ApplyJSON(data, query)
			if err != nil {
				return err
			}
			return a.printJSON(out)
		}
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		return a.printJSON(string(out))
	case FormatYAML:
		var result any = data
		if query != "" {
			var err error
			result, err = filter.Apply(data, query)
			if err != nil {
				return err
			}
		}
		out, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		_, err = a.Out.Write(out)
		return err
	}

	return fmt.Errorf("unsupported output format: %s", format)
}

// printJSON writes JSON, highlighted when stdout is a terminal
func (a *App) printJSON(s string) error {
	if a.Color {
		if err := quick.Highlight(a.Out, s+"\n", "json", "terminal256", "monokai"); err == nil {
			return nil
		}
	}
	_, err := fmt.Fprintln(a.Out, s)
	return err
}

// ValidateFormat checks an --output value
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("unsupported output format %q (use text, json or yaml)", format)
}

// validateQuery checks a --query value against the chosen output format
// before any data is read
func validateQuery(format, query string) error {
	if query == "" {
		return nil
	}
	if format == FormatText {
		return fmt.Errorf("--query requires --output json or yaml")
	}
	if !filter.IsValidJMESPath(query) {
		return fmt.Errorf("invalid --query expression %q", query)
	}
	return nil
}
