package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/lit/internal/input"
	"github.com/studiowebux/lit/internal/keybinds"
)

func TestNew_StartsAtMenu(t *testing.T) {
	e := CreateTestModel(t, 0)

	s := e.model.Session()
	AssertModelField(t, "mode", s.Mode, input.ModeMenu)
	AssertModelField(t, "menu index", s.Menu.Index(), 0)
	AssertModelField(t, "poll", e.model.poll, DefaultPollInterval)
	AssertModelField(t, "quitting", e.model.Quitting(), false)
}

func TestInit_StartsTicker(t *testing.T) {
	e := CreateTestModel(t, 0)

	if e.model.Init() == nil {
		t.Fatal("Init should schedule a tick")
	}
	if cmd := e.send(tickMsg(time.Now())); cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}

func TestUpdate_QuitFromMenu(t *testing.T) {
	e := CreateTestModel(t, 0)

	cmd := e.press(runes("q"))

	AssertQuit(t, cmd)
	AssertModelField(t, "quitting", e.model.Quitting(), true)
	AssertModelField(t, "view", e.model.View(), "")
	if cmd := e.send(tickMsg(time.Now())); cmd != nil {
		t.Error("no tick should be scheduled after quitting")
	}
}

func TestUpdate_QIsTypedInTextModes(t *testing.T) {
	e := CreateTestModel(t, 0)

	e.press(keyType(tea.KeyEnter)) // Add profile
	cmd := e.press(runes("q"))

	if cmd != nil {
		t.Error("q in a text field should not quit")
	}
	AssertModelField(t, "mode", e.model.Session().Mode, input.ModeEnterName)
	AssertModelField(t, "draft name", e.model.Session().Draft.Name, "q")
}

func TestUpdate_CtrlCQuitsAnywhere(t *testing.T) {
	e := CreateTestModel(t, 0, "work")

	e.press(keyType(tea.KeyDown), keyType(tea.KeyEnter)) // Switch profile
	AssertModelField(t, "mode", e.model.Session().Mode, input.ModeChooseSwitch)

	AssertQuit(t, e.press(keyType(tea.KeyCtrlC)))
}

func TestUpdate_DebounceDropsRapidNavigation(t *testing.T) {
	e := CreateTestModel(t, 200*time.Millisecond)

	e.send(keyType(tea.KeyDown), keyType(tea.KeyDown), keyType(tea.KeyDown))
	AssertModelField(t, "menu index after burst", e.model.Session().Menu.Index(), 1)

	e.clock.Advance(199 * time.Millisecond)
	e.send(keyType(tea.KeyDown))
	AssertModelField(t, "menu index inside window", e.model.Session().Menu.Index(), 1)

	e.clock.Advance(200 * time.Millisecond)
	e.send(keyType(tea.KeyDown))
	AssertModelField(t, "menu index after window", e.model.Session().Menu.Index(), 2)
}

func TestUpdate_TypingBypassesDebounce(t *testing.T) {
	e := CreateTestModel(t, 200*time.Millisecond)

	e.send(keyType(tea.KeyEnter))
	e.send(typeText("work")...)
	AssertModelField(t, "draft name", e.model.Session().Draft.Name, "work")

	// Typing did not reset the window, so enter is still inside it
	e.clock.Advance(100 * time.Millisecond)
	e.send(keyType(tea.KeyEnter))
	AssertModelField(t, "mode inside window", e.model.Session().Mode, input.ModeEnterName)

	e.clock.Advance(100 * time.Millisecond)
	e.send(keyType(tea.KeyEnter))
	AssertModelField(t, "mode after window", e.model.Session().Mode, input.ModeEnterUserName)
}

func TestUpdate_PasteAppendsText(t *testing.T) {
	e := CreateTestModel(t, 200*time.Millisecond)

	e.send(keyType(tea.KeyEnter))
	e.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("my work"), Paste: true})

	AssertModelField(t, "draft name", e.model.Session().Draft.Name, "my work")
}

func TestUpdate_AddThenSwitch(t *testing.T) {
	e := CreateTestModel(t, input.DefaultDebounce)

	e.press(keyType(tea.KeyEnter))
	e.press(typeText("work")...)
	e.press(keyType(tea.KeyEnter))
	e.press(typeText("Alice")...)
	e.press(keyType(tea.KeyEnter))
	e.press(typeText("alice@x.com")...)
	e.press(keyType(tea.KeyEnter))

	AssertModelField(t, "mode after add", e.model.Session().Mode, input.ModeMenu)
	p, ok := e.store.Get("work")
	if !ok {
		t.Fatal("profile work should exist")
	}
	AssertModelField(t, "user name", p.UserName, "Alice")

	e.press(runes("j"), keyType(tea.KeyEnter), keyType(tea.KeyEnter))

	AssertModelField(t, "active", e.store.Active(), "work")
	call, ok := e.applier.Last()
	if !ok {
		t.Fatal("profile should have been applied")
	}
	AssertModelField(t, "applied email", call.UserEmail, "alice@x.com")
	if !strings.Contains(e.model.View(), "Switched to work") {
		t.Error("view should show the switch status")
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	e := CreateTestModel(t, 0)

	e.send(tea.WindowSizeMsg{Width: 100, Height: 30})

	AssertModelField(t, "width", e.model.width, 100)
	AssertModelField(t, "height", e.model.height, 30)
	AssertModelField(t, "help width", e.model.help.Width, 100)
}

func TestToKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want input.Key
	}{
		{"rune", runes("a"), input.Key{Name: "a"}},
		{"space", keyType(tea.KeySpace), input.Key{Name: " "}},
		{"enter", keyType(tea.KeyEnter), input.Key{Name: "enter"}},
		{"esc", keyType(tea.KeyEsc), input.Key{Name: "esc"}},
		{"ctrl+v", keyType(tea.KeyCtrlV), input.Key{Name: "ctrl+v"}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true}, input.Key{Name: "alt+x"}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a@b"), Paste: true}, input.Key{Text: "a@b"}},
		{"coalesced", runes("abc"), input.Key{Text: "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertModelField(t, "key", toKey(tt.msg), tt.want)
		})
	}
}

func TestView_Menu(t *testing.T) {
	e := CreateTestModel(t, 0, "work")

	view := e.model.View()
	for _, option := range input.MenuOptions {
		if !strings.Contains(view, option) {
			t.Errorf("menu view should contain %q", option)
		}
	}
	if !strings.Contains(view, "No active profile") {
		t.Error("menu view should say no profile is active")
	}

	if err := e.store.SetActive("work"); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if !strings.Contains(e.model.View(), "Active: work") {
		t.Error("menu view should show the active profile")
	}
}

func TestView_ListProfiles(t *testing.T) {
	e := CreateTestModel(t, 0, "home", "work")

	for i := 0; i < input.MenuList; i++ {
		e.press(keyType(tea.KeyDown))
	}
	e.press(keyType(tea.KeyEnter))
	AssertModelField(t, "mode", e.model.Session().Mode, input.ModeListProfiles)

	view := e.model.View()
	for _, want := range []string{"home-user <home@x.com>", "work-user <work@x.com>"} {
		if !strings.Contains(view, want) {
			t.Errorf("listing should contain %q", want)
		}
	}
}

func TestView_EmptyChooser(t *testing.T) {
	e := CreateTestModel(t, 0)

	e.press(keyType(tea.KeyDown), keyType(tea.KeyEnter))

	if !strings.Contains(e.model.View(), "No profiles. Press b/esc to go back.") {
		t.Error("empty chooser should explain how to go back")
	}
}

func TestView_ConfirmDelete(t *testing.T) {
	e := CreateTestModel(t, 0, "work")

	e.press(keyType(tea.KeyDown), keyType(tea.KeyDown), keyType(tea.KeyDown), keyType(tea.KeyEnter), keyType(tea.KeyEnter))
	AssertModelField(t, "mode", e.model.Session().Mode, input.ModeConfirmDelete)

	view := e.model.View()
	if !strings.Contains(view, "Delete profile 'work'?") {
		t.Error("confirm view should name the profile")
	}
	if !strings.Contains(view, "y to delete, esc/n to keep") {
		t.Error("confirm view should show the bound keys")
	}
}

func TestView_FormShowsCaretOnActiveField(t *testing.T) {
	e := CreateTestModel(t, 0)

	e.press(keyType(tea.KeyEnter))
	e.press(typeText("oss")...)

	if !strings.Contains(e.model.View(), "oss"+CursorGlyph) {
		t.Error("form should show the caret after the typed text")
	}
}

func TestHelpKeys_FollowRegistry(t *testing.T) {
	registry := keybinds.NewDefaultRegistry()

	km := helpKeys(registry, keybinds.ContextMenu)
	if len(km.ShortHelp()) == 0 {
		t.Fatal("menu footer should not be empty")
	}
	first := km.ShortHelp()[0].Help()
	AssertModelField(t, "first key", first.Key, "k/up")
	AssertModelField(t, "first desc", first.Desc, "up")

	last := km.ShortHelp()[len(km.ShortHelp())-1].Help()
	AssertModelField(t, "last key", last.Key, "ctrl+c")

	registry.Unregister(keybinds.ContextMenu, "q")
	for _, b := range helpKeys(registry, keybinds.ContextMenu).ShortHelp() {
		if b.Help().Desc == "quit" {
			t.Error("unbound quit should not appear in the footer")
		}
	}
}
