package types

import "time"

// Profile is a named git identity
type Profile struct {
	Name      string `json:"name" yaml:"name"`
	UserName  string `json:"user_name" yaml:"user_name"`
	UserEmail string `json:"user_email" yaml:"user_email"`
}

// Identity is the persisted value of a profile (the name is the map key)
type Identity struct {
	UserName  string `json:"user_name" yaml:"user_name"`
	UserEmail string `json:"user_email" yaml:"user_email"`
}

// StoreFile is the on-disk shape of the profile store
type StoreFile struct {
	Profiles       map[string]Identity `json:"profiles"`
	CurrentProfile string              `json:"current_profile"`
}

// ProfileListing is one row of a profile listing (CLI output, list view)
type ProfileListing struct {
	Name      string `json:"name" yaml:"name"`
	UserName  string `json:"user_name" yaml:"user_name"`
	UserEmail string `json:"user_email" yaml:"user_email"`
	Active    bool   `json:"active" yaml:"active"`
}

// SwitchSource identifies where a profile switch was triggered from
type SwitchSource string

const (
	SourceTUI SwitchSource = "tui"
	SourceCLI SwitchSource = "cli"
)

// SwitchEvent is one recorded attempt to apply a profile
type SwitchEvent struct {
	ID          int64        `json:"id" yaml:"id"`
	Timestamp   time.Time    `json:"timestamp" yaml:"timestamp"`
	ProfileName string       `json:"profile_name" yaml:"profile_name"`
	UserName    string       `json:"user_name" yaml:"user_name"`
	UserEmail   string       `json:"user_email" yaml:"user_email"`
	Source      SwitchSource `json:"source" yaml:"source"`
	Error       string       `json:"error,omitempty" yaml:"error,omitempty"`
}

// Succeeded reports whether the switch was applied
func (e SwitchEvent) Succeeded() bool {
	return e.Error == ""
}

// ProfileStats summarizes the switch history of one profile
type ProfileStats struct {
	ProfileName  string    `json:"profile_name" yaml:"profile_name"`
	Switches     int       `json:"switches" yaml:"switches"`
	Failures     int       `json:"failures" yaml:"failures"`
	LastSwitched time.Time `json:"last_switched" yaml:"last_switched"`
}
