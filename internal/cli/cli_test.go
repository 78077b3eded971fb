package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiowebux/lit/internal/gitconfig"
	"github.com/studiowebux/lit/internal/profiles"
	"github.com/studiowebux/lit/internal/types"
	"gopkg.in/yaml.v3"
)

type memoryHistory struct {
	events []types.SwitchEvent
}

func (m *memoryHistory) Record(e types.SwitchEvent) error {
	e.ID = int64(len(m.events) + 1)
	m.events = append([]types.SwitchEvent{e}, m.events...)
	return nil
}

func (m *memoryHistory) List(limit int) ([]types.SwitchEvent, error) {
	if limit > 0 && limit < len(m.events) {
		return m.events[:limit], nil
	}
	return m.events, nil
}

func (m *memoryHistory) ListForProfile(name string, limit int) ([]types.SwitchEvent, error) {
	var out []types.SwitchEvent
	for _, e := range m.events {
		if e.ProfileName == name {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryHistory) Stats() ([]types.ProfileStats, error) {
	var stats []types.ProfileStats
	index := map[string]int{}
	for _, e := range m.events {
		i, ok := index[e.ProfileName]
		if !ok {
			i = len(stats)
			index[e.ProfileName] = i
			stats = append(stats, types.ProfileStats{ProfileName: e.ProfileName, LastSwitched: e.Timestamp})
		}
		stats[i].Switches++
		if !e.Succeeded() {
			stats[i].Failures++
		}
	}
	return stats, nil
}

func (m *memoryHistory) GetCount() (int, error) {
	return len(m.events), nil
}

func (m *memoryHistory) Clear() error {
	m.events = nil
	return nil
}

// failingHistory fails every read so tests can prove a command never got that far
type failingHistory struct{}

func (failingHistory) List(int) ([]types.SwitchEvent, error) {
	return nil, errors.New("history read")
}

func (failingHistory) ListForProfile(string, int) ([]types.SwitchEvent, error) {
	return nil, errors.New("history read")
}

func (failingHistory) Stats() ([]types.ProfileStats, error) {
	return nil, errors.New("history read")
}

func (failingHistory) GetCount() (int, error) { return 0, errors.New("history read") }

func (failingHistory) Clear() error { return errors.New("history read") }

type fakeIdentity struct {
	name, email string
}

func (f fakeIdentity) Read(context.Context) (string, string, error) {
	return f.name, f.email, nil
}

type testApp struct {
	*App
	out     *bytes.Buffer
	errOut  *bytes.Buffer
	applier *gitconfig.Recorder
	history *memoryHistory
}

func newTestApp(t *testing.T, stdin string) *testApp {
	t.Helper()
	store := profiles.NewStore(filepath.Join(t.TempDir(), "profiles.json"))
	applier := &gitconfig.Recorder{}
	hist := &memoryHistory{}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	app := New(store, profiles.NewSwitcher(store, applier, hist), strings.NewReader(stdin), out, errOut)
	app.HistoryDB = hist
	return &testApp{App: app, out: out, errOut: errOut, applier: applier, history: hist}
}

func (a *testApp) seed(t *testing.T) {
	t.Helper()
	require.NoError(t, a.Store.Add("work", "Alice", "alice@x.com"))
	require.NoError(t, a.Store.Add("home", "Bob", "bob@y.org"))
}

func TestAddProfile(t *testing.T) {
	app := newTestApp(t, "")

	require.NoError(t, app.AddProfile("work", "Alice", "alice@x.com"))

	p, ok := app.Store.Get("work")
	require.True(t, ok)
	assert.Equal(t, "Alice", p.UserName)
	assert.Equal(t, "alice@x.com", p.UserEmail)
	assert.Equal(t, "Profile 'work' added.\n", app.out.String())

	reloaded := profiles.Load(app.Store.Path())
	assert.True(t, reloaded.Has("work"))
}

func TestAddProfile_PromptsForMissingFields(t *testing.T) {
	app := newTestApp(t, "Alice\nalice@x.com\n")
	app.Interactive = true

	require.NoError(t, app.AddProfile("work", "", ""))

	p, _ := app.Store.Get("work")
	assert.Equal(t, "Alice", p.UserName)
	assert.Equal(t, "alice@x.com", p.UserEmail)
	assert.Contains(t, app.errOut.String(), "User name: ")
	assert.Contains(t, app.errOut.String(), "User email: ")
}

func TestAddProfile_PromptWithoutTrailingNewline(t *testing.T) {
	app := newTestApp(t, "alice@x.com")
	app.Interactive = true

	require.NoError(t, app.AddProfile("work", "Alice", ""))
	p, _ := app.Store.Get("work")
	assert.Equal(t, "alice@x.com", p.UserEmail)
}

func TestAddProfile_MissingFieldsWithoutTerminal(t *testing.T) {
	app := newTestApp(t, "Alice\n")

	err := app.AddProfile("work", "", "")
	assert.ErrorIs(t, err, ErrNotInteractive)
	assert.Equal(t, 0, app.Store.Len())
}

func TestAddProfile_EmptyPromptRejected(t *testing.T) {
	app := newTestApp(t, "\n")
	app.Interactive = true

	err := app.AddProfile("work", "", "alice@x.com")
	assert.ErrorIs(t, err, profiles.ErrEmptyField)
	assert.Equal(t, 0, app.Store.Len())
}

func TestSwitchProfile(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)

	require.NoError(t, app.SwitchProfile(context.Background(), "home"))

	assert.Equal(t, "home", app.Store.Active())
	last, ok := app.applier.Last()
	require.True(t, ok)
	assert.Equal(t, gitconfig.Call{UserName: "Bob", UserEmail: "bob@y.org"}, last)
	assert.Equal(t, "Switched to profile 'home'.\n", app.out.String())

	require.Len(t, app.history.events, 1)
	assert.Equal(t, types.SourceCLI, app.history.events[0].Source)
}

func TestSwitchProfile_UnknownSuggests(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)

	err := app.SwitchProfile(context.Background(), "wrk")
	require.Error(t, err)
	assert.ErrorIs(t, err, profiles.ErrProfileNotFound)
	assert.Contains(t, err.Error(), "did you mean work")
	assert.Empty(t, app.applier.Calls)
}

func TestSwitchProfile_ApplyFailure(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)
	app.applier.Err = errors.New("git exploded")

	err := app.SwitchProfile(context.Background(), "work")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "git exploded")
	assert.Empty(t, app.Store.Active())
	assert.Empty(t, app.out.String())
}

func TestSwitchProfile_Picker(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)
	app.Interactive = true

	var shown []types.ProfileListing
	app.SetPicker(func(title string, listings []types.ProfileListing) (string, error) {
		shown = listings
		return "work", nil
	})

	require.NoError(t, app.SwitchProfile(context.Background(), ""))
	assert.Len(t, shown, 2)
	assert.Equal(t, "work", app.Store.Active())
}

func TestSwitchProfile_PickerCancelled(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)
	app.Interactive = true
	app.SetPicker(func(string, []types.ProfileListing) (string, error) { return "", nil })

	err := app.SwitchProfile(context.Background(), "")
	assert.Error(t, err)
	assert.Empty(t, app.Store.Active())
}

func TestSwitchProfile_NoNameWithoutTerminal(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)

	err := app.SwitchProfile(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotInteractive)
}

func TestUpdateProfile(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)

	require.NoError(t, app.UpdateProfile("work", "Alice B", "ab@x.com"))
	p, _ := app.Store.Get("work")
	assert.Equal(t, "Alice B", p.UserName)

	err := app.UpdateProfile("ghost", "G", "g@x.com")
	assert.ErrorIs(t, err, profiles.ErrProfileNotFound)
	assert.False(t, app.Store.Has("ghost"))
}

func TestDeleteProfile(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)
	require.NoError(t, app.Store.SetActive("work"))

	require.NoError(t, app.DeleteProfile("work"))
	assert.False(t, app.Store.Has("work"))
	assert.Empty(t, app.Store.Active())
	assert.Equal(t, "Profile 'work' deleted.\n", app.out.String())

	err := app.DeleteProfile("work")
	assert.ErrorIs(t, err, profiles.ErrProfileNotFound)
}

func TestListProfiles_Text(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)
	require.NoError(t, app.Store.SetActive("work"))

	require.NoError(t, app.ListProfiles(ListOptions{}))

	want := "Profiles:\n" +
		"Profile: home\n  User Name: Bob\n  User Email: bob@y.org\n" +
		"Profile: work (active)\n  User Name: Alice\n  User Email: alice@x.com\n"
	assert.Equal(t, want, app.out.String())
}

func TestListProfiles_JSON(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)

	require.NoError(t, app.ListProfiles(ListOptions{Format: FormatJSON}))

	var got []types.ProfileListing
	require.NoError(t, json.Unmarshal(app.out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "home", got[0].Name)
}

func TestListProfiles_YAMLWithQuery(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)

	require.NoError(t, app.ListProfiles(ListOptions{Format: FormatYAML, Query: "[].user_email"}))

	var got []string
	require.NoError(t, yaml.Unmarshal(app.out.Bytes(), &got))
	assert.Equal(t, []string{"bob@y.org", "alice@x.com"}, got)
}

func TestListProfiles_QueryNeedsStructuredOutput(t *testing.T) {
	app := newTestApp(t, "")
	assert.Error(t, app.ListProfiles(ListOptions{Query: "[].name"}))
	assert.Error(t, app.ListProfiles(ListOptions{Format: "xml"}))
	assert.Error(t, app.ListProfiles(ListOptions{Format: FormatJSON, Query: "[?"}))
	assert.Empty(t, app.out.String())
}

func TestListProfiles_JSONQueryWithNoMatchPrintsNull(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)

	require.NoError(t, app.ListProfiles(ListOptions{Format: FormatJSON, Query: "[?name=='ghost'] | [0]"}))
	assert.Equal(t, "null\n", app.out.String())
}

func TestListProfiles_ColorOutputStillContainsData(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)
	app.Color = true

	require.NoError(t, app.ListProfiles(ListOptions{Format: FormatJSON, Query: "[0].name"}))
	assert.Contains(t, app.out.String(), "home")
}

func TestCurrent(t *testing.T) {
	app := newTestApp(t, "")
	require.NoError(t, app.Current(context.Background()))
	assert.Equal(t, "No active profile.\n", app.out.String())

	app.seed(t)
	require.NoError(t, app.Store.SetActive("work"))
	app.out.Reset()
	app.Git = fakeIdentity{"Mallory", "m@evil.io"}

	require.NoError(t, app.Current(context.Background()))
	assert.Equal(t, "work (Alice <alice@x.com>)\n", app.out.String())
	assert.Contains(t, app.errOut.String(), "Mallory <m@evil.io>")

	app.errOut.Reset()
	app.Git = fakeIdentity{"Alice", "alice@x.com"}
	require.NoError(t, app.Current(context.Background()))
	assert.Empty(t, app.errOut.String())
}

func TestHistory(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)
	require.NoError(t, app.SwitchProfile(context.Background(), "work"))
	require.NoError(t, app.SwitchProfile(context.Background(), "home"))
	app.out.Reset()

	require.NoError(t, app.History(HistoryOptions{Profile: "work"}))
	text := app.out.String()
	assert.Contains(t, text, "PROFILE")
	assert.Contains(t, text, "Alice <alice@x.com>")
	assert.NotContains(t, text, "Bob")

	app.out.Reset()
	require.NoError(t, app.History(HistoryOptions{Format: FormatJSON, Limit: 1}))
	var events []types.SwitchEvent
	require.NoError(t, json.Unmarshal(app.out.Bytes(), &events))
	require.Len(t, events, 1)
	assert.Equal(t, "home", events[0].ProfileName)
	assert.WithinDuration(t, time.Now(), events[0].Timestamp, time.Minute)

	app.out.Reset()
	require.NoError(t, app.History(HistoryOptions{Clear: true}))
	assert.Empty(t, app.history.events)
	assert.Equal(t, "History cleared (2 entries removed).\n", app.out.String())
}

func TestAddProfile_BlankArgumentsRejected(t *testing.T) {
	app := newTestApp(t, "")

	assert.ErrorIs(t, app.AddProfile("   ", "Alice", "alice@x.com"), profiles.ErrEmptyField)
	assert.ErrorIs(t, app.AddProfile("work", "  ", "alice@x.com"), ErrNotInteractive)
	assert.Equal(t, 0, app.Store.Len())
}

func TestHistory_InvalidQueryRejectedBeforeReading(t *testing.T) {
	app := newTestApp(t, "")
	app.HistoryDB = failingHistory{}

	err := app.History(HistoryOptions{Format: FormatJSON, Query: "[?name=="})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid --query")

	err = app.History(HistoryOptions{Query: "[].profile_name"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires --output")
}

func TestHistory_Stats(t *testing.T) {
	app := newTestApp(t, "")
	app.seed(t)
	require.NoError(t, app.SwitchProfile(context.Background(), "work"))
	require.NoError(t, app.SwitchProfile(context.Background(), "home"))
	require.NoError(t, app.SwitchProfile(context.Background(), "work"))
	app.out.Reset()

	require.NoError(t, app.History(HistoryOptions{Stats: true}))
	assert.Contains(t, app.out.String(), "SWITCHES")
	assert.Regexp(t, `work\s+2\s+0`, app.out.String())

	app.out.Reset()
	require.NoError(t, app.History(HistoryOptions{Stats: true, Format: FormatJSON, Query: "[?switches > `1`].profile_name"}))
	var names []string
	require.NoError(t, json.Unmarshal(app.out.Bytes(), &names))
	assert.Equal(t, []string{"work"}, names)
}

func TestHistory_Disabled(t *testing.T) {
	app := newTestApp(t, "")
	app.HistoryDB = nil

	assert.Error(t, app.History(HistoryOptions{}))
}

func TestSuggest(t *testing.T) {
	names := []string{"client-a", "home", "work", "workshop"}

	hints := suggest("wrk", names)
	assert.Contains(t, hints, "work")
	assert.Contains(t, hints, "workshop")
	assert.NotContains(t, hints, "home")
	assert.Contains(t, suggest("homee", names), "home")
	assert.Empty(t, suggest("zzz", names))
}
