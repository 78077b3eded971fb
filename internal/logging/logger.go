package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. Callers should use the helper functions
// below rather than holding on to L, since Setup and the TUI swap it.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Prefix: "lit"})

// Setup replaces L with a logger writing to w at the given level name.
// Unknown level names fall back to info.
func Setup(w io.Writer, level string) {
	L = clog.NewWithOptions(w, clog.Options{
		Prefix:          "lit",
		ReportTimestamp: w != os.Stderr,
		Level:           ParseLevel(level),
	})
}

// ToFile redirects logging to path, appending. Closing the returned file does
// not restore the previous logger.
func ToFile(path string, level string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	Setup(f, level)
	return f, nil
}

// ParseLevel maps a level name to a charmbracelet/log level
func ParseLevel(level string) clog.Level {
	lvl, err := clog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return clog.InfoLevel
	}
	return lvl
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...any) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...any) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...any) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...any) {
	L.Error(fmt.Sprintf(format, v...))
}
