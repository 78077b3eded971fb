package profiles

import (
	"context"
	"fmt"
	"time"

	"github.com/studiowebux/lit/internal/logging"
	"github.com/studiowebux/lit/internal/types"
)

// Applier applies an identity to the external tool's global configuration
type Applier interface {
	Apply(ctx context.Context, userName, userEmail string) error
}

// Recorder stores switch events
type Recorder interface {
	Record(event types.SwitchEvent) error
}

// NopRecorder discards every event
type NopRecorder struct{}

// Record implements Recorder
func (NopRecorder) Record(types.SwitchEvent) error { return nil }

// Switcher applies a stored profile and marks it active.
// The TUI and the CLI both switch through it.
type Switcher struct {
	store    *Store
	applier  Applier
	recorder Recorder
	now      func() time.Time
}

// NewSwitcher creates a switcher. A nil recorder disables history.
func NewSwitcher(store *Store, applier Applier, recorder Recorder) *Switcher {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &Switcher{
		store:    store,
		applier:  applier,
		recorder: recorder,
		now:      time.Now,
	}
}

// Switch applies the profile at name. When applying fails the active marker
// is left untouched; when only saving fails the marker is set in memory and
// the save error is returned.
func (s *Switcher) Switch(ctx context.Context, name string, source types.SwitchSource) (types.Profile, error) {
	profile, ok := s.store.Get(name)
	if !ok {
		return types.Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}

	event := types.SwitchEvent{
		Timestamp:   s.now(),
		ProfileName: profile.Name,
		UserName:    profile.UserName,
		UserEmail:   profile.UserEmail,
		Source:      source,
	}

	if err := s.applier.Apply(ctx, profile.UserName, profile.UserEmail); err != nil {
		event.Error = err.Error()
		s.record(event)
		return profile, fmt.Errorf("failed to apply profile %s: %w", name, err)
	}
	s.record(event)

	if err := s.store.SetActive(name); err != nil {
		return profile, fmt.Errorf("applied profile %s but failed to save: %w", name, err)
	}

	logging.Debugf("switched to profile %s (%s <%s>) via %s", profile.Name, profile.UserName, profile.UserEmail, source)
	return profile, nil
}

func (s *Switcher) record(event types.SwitchEvent) {
	if err := s.recorder.Record(event); err != nil {
		logging.Warnf("failed to record switch to %s: %v", event.ProfileName, err)
	}
}
