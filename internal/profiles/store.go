package profiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/studiowebux/lit/internal/config"
	"github.com/studiowebux/lit/internal/logging"
	"github.com/studiowebux/lit/internal/types"
	"github.com/tidwall/jsonc"
)

var (
	// ErrProfileNotFound is returned when a named profile does not exist
	ErrProfileNotFound = errors.New("profile not found")
	// ErrEmptyField is returned when a profile name, user name or email is empty
	ErrEmptyField = errors.New("profile fields must not be empty")
)

// Store owns the profile mapping and the active marker.
// Every mutation is applied in memory and then persisted; when persisting
// fails the store stays dirty and the next Save writes everything.
type Store struct {
	path     string
	profiles map[string]types.Identity
	active   string
	dirty    bool
}

// NewStore creates an empty store persisted at path
func NewStore(path string) *Store {
	return &Store{
		path:     path,
		profiles: make(map[string]types.Identity),
	}
}

// Load reads the store at path. A missing, unreadable or malformed file
// yields an empty store; only the malformed case is logged.
func Load(path string) *Store {
	s := NewStore(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warnf("failed to read profile store %s: %v", path, err)
		}
		return s
	}

	var file types.StoreFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
		logging.Warnf("ignoring malformed profile store %s: %v", path, err)
		return s
	}

	for name, identity := range file.Profiles {
		if name == "" {
			continue
		}
		s.profiles[name] = identity
	}

	if _, ok := s.profiles[file.CurrentProfile]; ok {
		s.active = file.CurrentProfile
	} else if file.CurrentProfile != "" {
		logging.Warnf("clearing active profile %q: not in store", file.CurrentProfile)
		s.dirty = true
	}

	return s
}

// Path returns the file the store persists to
func (s *Store) Path() string {
	return s.path
}

// Dirty reports whether in-memory changes have not been persisted
func (s *Store) Dirty() bool {
	return s.dirty
}

// Save writes the whole store to disk. The file is replaced by renaming a
// fully written temp file so a crash never leaves a truncated store.
func (s *Store) Save() error {
	file := types.StoreFile{
		Profiles:       s.profiles,
		CurrentProfile: s.active,
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, config.DirPermissions); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".profiles-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write profiles file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync profiles file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close profiles file: %w", err)
	}
	if err := os.Chmod(tmpPath, config.FilePermissions); err != nil {
		return fmt.Errorf("failed to set profiles file permissions: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to replace profiles file: %w", err)
	}

	s.dirty = false
	return nil
}

// Add inserts or overwrites the profile at name.
// Surrounding whitespace is trimmed; a blank field is ErrEmptyField.
func (s *Store) Add(name, userName, userEmail string) error {
	name, userName, userEmail = strings.TrimSpace(name), strings.TrimSpace(userName), strings.TrimSpace(userEmail)
	if name == "" || userName == "" || userEmail == "" {
		return ErrEmptyField
	}

	s.profiles[name] = types.Identity{UserName: userName, UserEmail: userEmail}
	s.dirty = true
	return s.Save()
}

// Update changes an existing profile's identity. Absent names are a no-op.
func (s *Store) Update(name, userName, userEmail string) error {
	if _, ok := s.profiles[name]; !ok {
		return nil
	}
	userName, userEmail = strings.TrimSpace(userName), strings.TrimSpace(userEmail)
	if userName == "" || userEmail == "" {
		return ErrEmptyField
	}

	s.profiles[name] = types.Identity{UserName: userName, UserEmail: userEmail}
	s.dirty = true
	return s.Save()
}

// Remove deletes the profile at name and clears the active marker if it
// pointed there. Absent names are a no-op.
func (s *Store) Remove(name string) error {
	if _, ok := s.profiles[name]; !ok {
		return nil
	}

	delete(s.profiles, name)
	if s.active == name {
		s.active = ""
	}
	s.dirty = true
	return s.Save()
}

// SetActive marks name as the currently applied profile
func (s *Store) SetActive(name string) error {
	if _, ok := s.profiles[name]; !ok {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}

	s.active = name
	s.dirty = true
	return s.Save()
}

// Get returns the profile stored at name
func (s *Store) Get(name string) (types.Profile, bool) {
	identity, ok := s.profiles[name]
	if !ok {
		return types.Profile{}, false
	}
	return types.Profile{Name: name, UserName: identity.UserName, UserEmail: identity.UserEmail}, true
}

// Has reports whether name exists
func (s *Store) Has(name string) bool {
	_, ok := s.profiles[name]
	return ok
}

// Active returns the active profile name, empty when none
func (s *Store) Active() string {
	return s.active
}

// Len returns the number of profiles
func (s *Store) Len() int {
	return len(s.profiles)
}

// Names returns the profile names in ascending order
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Profiles returns all profiles ordered by name
func (s *Store) Profiles() []types.Profile {
	names := s.Names()
	result := make([]types.Profile, 0, len(names))
	for _, name := range names {
		p, _ := s.Get(name)
		result = append(result, p)
	}
	return result
}

// Listings returns all profiles ordered by name with their active flag
func (s *Store) Listings() []types.ProfileListing {
	profiles := s.Profiles()
	result := make([]types.ProfileListing, 0, len(profiles))
	for _, p := range profiles {
		result = append(result, types.ProfileListing{
			Name:      p.Name,
			UserName:  p.UserName,
			UserEmail: p.UserEmail,
			Active:    p.Name == s.active,
		})
	}
	return result
}
