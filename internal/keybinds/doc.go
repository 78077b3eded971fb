/*
Package keybinds maps terminal keys to user actions.

# Overview

Every interactive mode belongs to a Context. A key pressed in a mode is
looked up in that mode's context first and then in the global context:

  - global: ctrl+c force quit
  - menu: up/k, down/j, enter, q
  - text_input: enter, esc, backspace, ctrl+v, ctrl+u
  - list: up/k, down/j, enter, b/esc
  - viewer: b/esc
  - confirm: y, n/esc

Keys that match nothing are ignored by the caller, except in text_input
where a single printable character is typed into the field.

# Configuration File Format

Overrides live in keybinds.json next to config.yaml. Each section maps a
key to an action. Comments and trailing commas are accepted:

	{
	  // vim users
	  "list": {
	    "h": "back",
	    "b": "none", // unbind
	  },
	  "confirm": {
	    "Y": "confirm",
	  },
	}

# Validation

A file is rejected as a whole, and the defaults are used, when it rebinds
ctrl+c, names an unknown action or context, or binds a printable key in
text_input. Bindings that shadow a global key only produce warnings.
*/
package keybinds
