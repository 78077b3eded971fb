package tui

import "time"

// UI Layout Constants

const (
	BoxWidthMargin = 4  // Horizontal margin around the main box (m.width - 4)
	BoxMinWidth    = 40 // Narrowest box before the layout stops shrinking

	CursorGlyph   = "▌"  // Caret drawn after the text being typed
	SelectedGlyph = "> " // Prefix of the row under the cursor
	ActiveMarker  = "*"  // Marks the active profile in lists
)

// DefaultPollInterval is how often the view redraws without input
const DefaultPollInterval = 100 * time.Millisecond
