package input

// Cursor is a bounded selection over an ordered list of options.
// It never wraps; on an empty list the index stays at 0.
type Cursor struct {
	index   int
	options []string
}

// NewCursor creates a cursor at index 0
func NewCursor(options []string) Cursor {
	var c Cursor
	c.Reset(options)
	return c
}

// Reset replaces the options and moves back to the first one
func (c *Cursor) Reset(options []string) {
	c.options = append([]string(nil), options...)
	c.index = 0
}

// MoveUp moves one option up, stopping at the first
func (c *Cursor) MoveUp() {
	if c.index > 0 {
		c.index--
	}
}

// MoveDown moves one option down, stopping at the last
func (c *Cursor) MoveDown() {
	if c.index < len(c.options)-1 {
		c.index++
	}
}

// Index returns the current position
func (c Cursor) Index() int {
	return c.index
}

// Len returns the number of options
func (c Cursor) Len() int {
	return len(c.options)
}

// Options returns the options in order
func (c Cursor) Options() []string {
	return c.options
}

// Selected returns the option under the cursor, false when there are none
func (c Cursor) Selected() (string, bool) {
	if len(c.options) == 0 {
		return "", false
	}
	return c.options[c.index], true
}
