package history

import (
	"fmt"
	"time"

	"github.com/studiowebux/lit/internal/types"
)

// Stats aggregates the history per profile, most recently switched first
func (m *Manager) Stats() ([]types.ProfileStats, error) {
	query := `
		SELECT
			profile_name,
			COUNT(*) AS switches,
			SUM(CASE WHEN error IS NOT NULL AND error != '' THEN 1 ELSE 0 END) AS failures,
			MAX(timestamp) AS last_switched
		FROM switch_history
		GROUP BY profile_name
		ORDER BY last_switched DESC, profile_name ASC
	`

	rows, err := m.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get history stats: %w", err)
	}
	defer rows.Close()

	stats := []types.ProfileStats{}
	for rows.Next() {
		var s types.ProfileStats
		var lastSwitched string

		if err := rows.Scan(&s.ProfileName, &s.Switches, &s.Failures, &lastSwitched); err != nil {
			return nil, fmt.Errorf("failed to scan history stats: %w", err)
		}

		parsed, err := time.Parse(time.RFC3339Nano, lastSwitched)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %q for profile %s: %w", lastSwitched, s.ProfileName, err)
		}
		s.LastSwitched = parsed.Local()

		stats = append(stats, s)
	}

	return stats, rows.Err()
}
