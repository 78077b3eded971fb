package input

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Field names one draft buffer
type Field int

const (
	FieldName Field = iota
	FieldUserName
	FieldUserEmail
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "Profile name"
	case FieldUserName:
		return "User name"
	case FieldUserEmail:
		return "User email"
	}
	return "unknown"
}

// Draft holds the text typed during a multi-step flow
type Draft struct {
	Name      string
	UserName  string
	UserEmail string
}

// Get returns the buffer for f
func (d Draft) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldUserName:
		return d.UserName
	case FieldUserEmail:
		return d.UserEmail
	}
	return ""
}

// Set replaces the buffer for f
func (d *Draft) Set(f Field, value string) {
	switch f {
	case FieldName:
		d.Name = value
	case FieldUserName:
		d.UserName = value
	case FieldUserEmail:
		d.UserEmail = value
	}
}

// Append adds text to the buffer for f after dropping control characters
func (d *Draft) Append(f Field, text string) {
	d.Set(f, d.Get(f)+sanitize(text))
}

// Backspace drops the last character of f; no-op when empty
func (d *Draft) Backspace(f Field) {
	value := d.Get(f)
	if value == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(value)
	d.Set(f, value[:len(value)-size])
}

// Clear empties every buffer
func (d *Draft) Clear() {
	*d = Draft{}
}

// IsEmpty reports whether every buffer is empty
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// sanitize removes newlines and other control characters
func sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
}
