package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/lit/internal/input"
	"github.com/studiowebux/lit/internal/keybinds"
	"github.com/studiowebux/lit/internal/types"
)

// Store is the profile store as seen by the TUI
type Store interface {
	input.Store
	Listings() []types.ProfileListing
	Active() string
}

// Options configures a Model
type Options struct {
	Store        Store
	Switcher     input.Switcher
	Keys         *keybinds.Registry // nil uses the defaults
	Debounce     time.Duration
	PollInterval time.Duration // <= 0 uses DefaultPollInterval
}

// Model is the Bubble Tea model of the interactive profile menu.
// All state transitions happen in input.Machine; the model only feeds it
// keys and projects the resulting session.
type Model struct {
	machine  *input.Machine
	store    Store
	session  input.Session
	debounce *input.Debouncer
	poll     time.Duration
	ctx      context.Context

	help     help.Model
	width    int
	height   int
	quitting bool

	now func() time.Time
}

type tickMsg time.Time

// New creates a model positioned at the main menu
func New(opts Options) Model {
	poll := opts.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}

	h := help.New()
	h.ShortSeparator = " • "

	return Model{
		machine:  input.NewMachine(opts.Store, opts.Switcher, opts.Keys),
		store:    opts.Store,
		session:  input.NewSession(),
		debounce: input.NewDebouncer(opts.Debounce),
		poll:     poll,
		ctx:      context.Background(),
		help:     h,
		now:      time.Now,
	}
}

// Session returns the current session
func (m *Model) Session() input.Session {
	return m.session
}

// Quitting reports whether the model asked the program to exit
func (m *Model) Quitting() bool {
	return m.quitting
}

// Init starts the redraw ticker
func (m *Model) Init() tea.Cmd {
	return tick(m.poll)
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		return m, tick(m.poll)
	}

	return m, nil
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
