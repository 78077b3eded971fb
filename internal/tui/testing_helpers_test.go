package tui

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/lit/internal/gitconfig"
	"github.com/studiowebux/lit/internal/profiles"
)

// testClock is a manually advanced time source
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type testEnv struct {
	model   *Model
	store   *profiles.Store
	applier *gitconfig.Recorder
	clock   *testClock
}

// CreateTestModel creates a Model over a temp store seeded with names.
// Each profile gets "<name>-user" and "<name>@x.com".
func CreateTestModel(t *testing.T, debounce time.Duration, names ...string) *testEnv {
	t.Helper()

	store := profiles.NewStore(filepath.Join(t.TempDir(), "profiles.json"))
	for _, name := range names {
		if err := store.Add(name, name+"-user", name+"@x.com"); err != nil {
			t.Fatalf("Failed to seed profile %s: %v", name, err)
		}
	}

	applier := &gitconfig.Recorder{}
	m := New(Options{
		Store:    store,
		Switcher: profiles.NewSwitcher(store, applier, nil),
		Debounce: debounce,
	})
	m.machine.SetClipboardReader(func() (string, error) { return "", errors.New("no clipboard") })

	clock := &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	m.now = clock.Now

	return &testEnv{model: &m, store: store, applier: applier, clock: clock}
}

// send delivers msgs without moving the clock
func (e *testEnv) send(msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = e.model.Update(msg)
	}
	return cmd
}

// press delivers msgs one second apart so none is debounced
func (e *testEnv) press(msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		e.clock.Advance(time.Second)
		_, cmd = e.model.Update(msg)
	}
	return cmd
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeText sends one key message per rune
func typeText(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, runes(string(r)))
	}
	return msgs
}

// AssertModelField is a generic helper for checking model field values
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

// AssertQuit verifies that cmd produces tea.QuitMsg
func AssertQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("Expected quit command but got nil")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("Expected tea.QuitMsg")
	}
}
