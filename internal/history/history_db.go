package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/studiowebux/lit/internal/config"
	"github.com/studiowebux/lit/internal/migrations"
	"github.com/studiowebux/lit/internal/types"
)

// DefaultLimit caps List when no limit is given
const DefaultLimit = 50

// timestampLayout has fixed width so timestamps sort as text
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Manager stores switch events in sqlite
type Manager struct {
	db  *sql.DB
	now func() time.Time
}

// NewManager opens (creating if needed) the history database at dbPath
func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, config.DirPermissions); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Manager{db: db, now: time.Now}, nil
}

// Record stores one switch event. A zero timestamp is set to now.
func (m *Manager) Record(event types.SwitchEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = m.now()
	}

	var errMsg sql.NullString
	if event.Error != "" {
		errMsg = sql.NullString{String: event.Error, Valid: true}
	}

	_, err := m.db.Exec(`
		INSERT INTO switch_history (timestamp, profile_name, user_name, user_email, source, error)
		VALUES (?, ?, ?, ?, ?, ?)`,
		event.Timestamp.UTC().Format(timestampLayout),
		event.ProfileName,
		event.UserName,
		event.UserEmail,
		string(event.Source),
		errMsg,
	)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	return nil
}

// List returns the most recent events, newest first
func (m *Manager) List(limit int) ([]types.SwitchEvent, error) {
	rows, err := m.db.Query(`
		SELECT id, timestamp, profile_name, user_name, user_email, source, error
		FROM switch_history
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListForProfile returns the most recent events for one profile, newest first
func (m *Manager) ListForProfile(profileName string, limit int) ([]types.SwitchEvent, error) {
	rows, err := m.db.Query(`
		SELECT id, timestamp, profile_name, user_name, user_email, source, error
		FROM switch_history
		WHERE profile_name = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT ?`, profileName, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to load history for profile: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

func scanEvents(rows *sql.Rows) ([]types.SwitchEvent, error) {
	events := []types.SwitchEvent{}

	for rows.Next() {
		var event types.SwitchEvent
		var timestamp string
		var source string
		var errMsg sql.NullString

		err := rows.Scan(
			&event.ID,
			&timestamp,
			&event.ProfileName,
			&event.UserName,
			&event.UserEmail,
			&source,
			&errMsg,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		parsed, err := time.Parse(time.RFC3339Nano, timestamp)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q in history entry %d: %w", timestamp, event.ID, err)
		}
		event.Timestamp = parsed.Local()
		event.Source = types.SwitchSource(source)
		event.Error = errMsg.String

		events = append(events, event)
	}

	return events, rows.Err()
}

// Clear deletes every event
func (m *Manager) Clear() error {
	if _, err := m.db.Exec("DELETE FROM switch_history"); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// GetCount returns the number of stored events
func (m *Manager) GetCount() (int, error) {
	var count int
	if err := m.db.QueryRow("SELECT COUNT(*) FROM switch_history").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get history count: %w", err)
	}
	return count, nil
}

// Close closes the database
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
