package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/lit/internal/input"
	"github.com/studiowebux/lit/internal/keybinds"
	"github.com/studiowebux/lit/internal/types"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"}
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(1, 2)
)

// View renders the current session
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render("lit · git identity profiles"))
	b.WriteString("\n\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(helpKeys(m.machine.Keys(), m.session.Mode.Context())))

	box := styleBox
	if m.width > 0 {
		box = box.Width(max(m.width-BoxWidthMargin, BoxMinWidth))
	}
	return box.Render(b.String())
}

func (m *Model) renderBody() string {
	s := m.session
	switch s.Mode {
	case input.ModeMenu:
		return m.renderMenu()
	case input.ModeEnterName, input.ModeEnterUserName, input.ModeEnterUserEmail:
		return m.renderForm("New profile")
	case input.ModeEnterUpdateUserName, input.ModeEnterUpdateUserEmail:
		return m.renderForm(fmt.Sprintf("Update profile '%s'", s.Pending))
	case input.ModeListProfiles:
		return m.renderListing()
	case input.ModeChooseSwitch:
		return m.renderChooser("Switch to which profile?")
	case input.ModeChooseUpdate:
		return m.renderChooser("Update which profile?")
	case input.ModeChooseDelete:
		return m.renderChooser("Delete which profile?")
	case input.ModeConfirmDelete:
		return m.renderConfirm()
	}
	return ""
}

func (m *Model) renderMenu() string {
	var lines []string
	if active := m.store.Active(); active != "" {
		lines = append(lines, "Active: "+styleSuccess.Render(active))
	} else {
		lines = append(lines, styleSubtle.Render("No active profile"))
	}
	lines = append(lines, "")
	lines = append(lines, renderOptions(m.session.Menu, "")...)
	return strings.Join(lines, "\n")
}

// renderForm shows every field of the current flow, filled ones first.
// Only the field being edited gets a caret.
func (m *Model) renderForm(title string) string {
	s := m.session
	active, _ := s.ActiveField()

	fields := []input.Field{input.FieldName, input.FieldUserName, input.FieldUserEmail}
	if s.Pending != "" {
		fields = fields[1:]
	}

	lines := []string{styleTitle.Render(title), ""}
	for _, field := range fields {
		label := fmt.Sprintf("%-13s", field.String()+":")
		value := s.Draft.Get(field)
		switch {
		case field == active:
			lines = append(lines, label+" "+value+CursorGlyph)
		case field < active:
			lines = append(lines, styleSubtle.Render(label+" "+value))
		default:
			lines = append(lines, styleSubtle.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderListing() string {
	listings := m.store.Listings()
	if len(listings) == 0 {
		return styleSubtle.Render("No profiles yet.")
	}

	width := 0
	for _, l := range listings {
		width = max(width, len(l.Name))
	}

	lines := []string{styleTitle.Render("Profiles"), ""}
	for _, l := range listings {
		lines = append(lines, renderListingRow(l, width))
	}
	return strings.Join(lines, "\n")
}

func renderListingRow(l types.ProfileListing, width int) string {
	marker := " "
	if l.Active {
		marker = ActiveMarker
	}
	row := fmt.Sprintf("%s %-*s  %s <%s>", marker, width, l.Name, l.UserName, l.UserEmail)
	if l.Active {
		return styleSuccess.Render(row)
	}
	return row
}

func (m *Model) renderChooser(title string) string {
	cursor, _ := m.session.ListCursor()
	lines := []string{styleTitle.Render(title), ""}
	if cursor.Len() == 0 {
		back := m.machine.Keys().GetBindingString(keybinds.ContextList, keybinds.ActionBack)
		lines = append(lines, styleSubtle.Render(fmt.Sprintf("No profiles. Press %s to go back.", back)))
		return strings.Join(lines, "\n")
	}
	lines = append(lines, renderOptions(cursor, m.store.Active())...)
	return strings.Join(lines, "\n")
}

func (m *Model) renderConfirm() string {
	keys := m.machine.Keys()
	yes := keys.GetBindingString(keybinds.ContextConfirm, keybinds.ActionConfirm)
	no := keys.GetBindingString(keybinds.ContextConfirm, keybinds.ActionCancel)
	return styleWarning.Render(fmt.Sprintf("Delete profile '%s'?", m.session.Pending)) +
		"\n\n" + styleSubtle.Render(fmt.Sprintf("%s to delete, %s to keep", yes, no))
}

func (m *Model) renderStatus() string {
	status := m.session.Status
	switch {
	case status.Message == "":
		return ""
	case status.IsError:
		return styleError.Render("✗ " + status.Message)
	default:
		return styleSuccess.Render("✓ " + status.Message)
	}
}

// renderOptions draws a cursor's options, highlighting the selected row
// and marking active when it appears
func renderOptions(cursor input.Cursor, active string) []string {
	options := cursor.Options()
	lines := make([]string, 0, len(options))
	for i, option := range options {
		label := option
		if active != "" && option == active {
			label += " " + ActiveMarker
		}
		if i == cursor.Index() {
			lines = append(lines, styleSelected.Render(SelectedGlyph+label))
		} else {
			lines = append(lines, "  "+label)
		}
	}
	return lines
}
