/*
Package tui implements the interactive profile menu of lit.

# Architecture

The TUI follows the Bubble Tea framework's Model-Update-View pattern, but
owns almost no state of its own:
  - Model: holds an input.Session and feeds it to an input.Machine
  - Update: converts key messages, debounces them and calls Machine.Handle
  - View: a read-only projection of the session and the profile store

# Key Components

  - model.go: Model, options and the redraw ticker
  - keys.go: key conversion, quit detection and debouncing
  - render.go: styles and per-mode rendering
  - help.go: help footer built from the keybinds.Registry

# Debouncing

Every key except text typed into a field passes through an input.Debouncer.
Keys dropped inside the window are discarded. Typing bypasses the debouncer
and does not reset its window.

# Keybind System

Keys are resolved through the same keybinds.Registry the machine uses, so
user overrides from keybinds.json change both behavior and the help footer.

# Threading Model

Everything runs on Bubble Tea's event loop goroutine. Applying a profile
runs git synchronously inside Update, bounded by the git timeout.
*/
package tui
